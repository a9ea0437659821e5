package sshfx

// requestIDSetter is implemented by every packet that carries a request-id
// on the wire. SSH_FXP_INIT and SSH_FXP_VERSION do not; their identifier is
// zero by convention, and uniform extraction goes through RawPacket.RequestID.
type requestIDSetter interface {
	setRequestID(uint32)
}

func (p *OpenPacket) setRequestID(id uint32)          { p.RequestID = id }
func (p *ClosePacket) setRequestID(id uint32)         { p.RequestID = id }
func (p *ReadPacket) setRequestID(id uint32)          { p.RequestID = id }
func (p *WritePacket) setRequestID(id uint32)         { p.RequestID = id }
func (p *LStatPacket) setRequestID(id uint32)         { p.RequestID = id }
func (p *FStatPacket) setRequestID(id uint32)         { p.RequestID = id }
func (p *SetStatPacket) setRequestID(id uint32)       { p.RequestID = id }
func (p *FSetStatPacket) setRequestID(id uint32)      { p.RequestID = id }
func (p *OpenDirPacket) setRequestID(id uint32)       { p.RequestID = id }
func (p *ReadDirPacket) setRequestID(id uint32)       { p.RequestID = id }
func (p *RemovePacket) setRequestID(id uint32)        { p.RequestID = id }
func (p *MkdirPacket) setRequestID(id uint32)         { p.RequestID = id }
func (p *RmdirPacket) setRequestID(id uint32)         { p.RequestID = id }
func (p *RealPathPacket) setRequestID(id uint32)      { p.RequestID = id }
func (p *StatPacket) setRequestID(id uint32)          { p.RequestID = id }
func (p *RenamePacket) setRequestID(id uint32)        { p.RequestID = id }
func (p *ReadLinkPacket) setRequestID(id uint32)      { p.RequestID = id }
func (p *SymlinkPacket) setRequestID(id uint32)       { p.RequestID = id }
func (p *ExtendedPacket) setRequestID(id uint32)      { p.RequestID = id }
func (p *StatusPacket) setRequestID(id uint32)        { p.RequestID = id }
func (p *HandlePacket) setRequestID(id uint32)        { p.RequestID = id }
func (p *DataPacket) setRequestID(id uint32)          { p.RequestID = id }
func (p *NamePacket) setRequestID(id uint32)          { p.RequestID = id }
func (p *AttrsPacket) setRequestID(id uint32)         { p.RequestID = id }
func (p *ExtendedReplyPacket) setRequestID(id uint32) { p.RequestID = id }
