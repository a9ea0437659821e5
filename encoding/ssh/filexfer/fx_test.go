package sshfx

import (
	"testing"
)

func TestStatusMessages(t *testing.T) {
	tests := []struct {
		code Status
		want string
	}{
		{StatusOK, "Ok"},
		{StatusEOF, "End of file"},
		{StatusNoSuchFile, "No such file"},
		{StatusPermissionDenied, "Permission denied"},
		{StatusFailure, "Failure"},
		{StatusBadMessage, "Bad message"},
		{StatusNoConnection, "No connection"},
		{StatusConnectionLost, "Connection lost"},
		{StatusOPUnsupported, "Operation unsupported"},
	}

	for _, tt := range tests {
		if got := tt.code.Message(); got != tt.want {
			t.Errorf("%s: Message() = %q, but expected %q", tt.code, got, tt.want)
		}

		if got := tt.code.Error(); got != tt.want {
			t.Errorf("%s: Error() = %q, but expected %q", tt.code, got, tt.want)
		}
	}
}

func TestNewStatus(t *testing.T) {
	p := NewStatus(7, StatusNoSuchFile)

	if p.RequestID != 7 {
		t.Errorf("RequestID = %d, but expected 7", p.RequestID)
	}

	if p.StatusCode != StatusNoSuchFile {
		t.Errorf("StatusCode = %v, but expected %v", p.StatusCode, StatusNoSuchFile)
	}

	if p.ErrorMessage != "No such file" {
		t.Errorf("ErrorMessage = %q, but expected %q", p.ErrorMessage, "No such file")
	}

	if p.LanguageTag != "en-US" {
		t.Errorf("LanguageTag = %q, but expected %q", p.LanguageTag, "en-US")
	}
}
