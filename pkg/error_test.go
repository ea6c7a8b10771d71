package pkg

import (
	"errors"
	"testing"
)

func TestReportStatus_String(t *testing.T) {
	tests := []struct {
		status ReportStatus
		want   string
	}{
		{ReportStatusSent, "sent"},
		{ReportStatusError, "error"},
		{ReportStatusShort, "short"},
		{ReportStatusFull, "full"},
		{ReportStatusCancelled, "cancelled"},
		{ReportStatus(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("ReportStatus.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReportStatus_Error(t *testing.T) {
	tests := []struct {
		status  ReportStatus
		wantErr error
	}{
		{ReportStatusSent, nil},
		{ReportStatusError, ErrReportWrite},
		{ReportStatusShort, ErrShortWrite},
		{ReportStatusFull, ErrReportFull},
		{ReportStatusCancelled, ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			err := tt.status.Error()
			if tt.wantErr == nil && err != nil {
				t.Errorf("ReportStatus.Error() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ReportStatus.Error() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSentinelErrorsDistinct(t *testing.T) {
	all := []error{
		ErrCancelled, ErrInvalidParameter, ErrNotSupported, ErrShortReport,
		ErrReportFull, ErrReportWrite, ErrShortWrite, ErrUnknownKey,
		ErrNoSuchLayer, ErrNoSuchButton, ErrInvalidConfig,
	}
	for i, a := range all {
		if a == nil || a.Error() == "" {
			t.Fatalf("error %d is empty", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}
