package pkg

import "errors"

// Sentinel errors shared by softkbd packages.
var (
	// ErrCancelled indicates a typing operation was cancelled before it
	// completed. Keys are always released first.
	ErrCancelled = errors.New("typing cancelled")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotSupported indicates an unsupported operation or feature.
	ErrNotSupported = errors.New("not supported")

	// ErrShortReport indicates a keyboard report shorter than 8 bytes.
	ErrShortReport = errors.New("keyboard report too short")

	// ErrReportFull indicates all six key slots of a boot report are in use.
	ErrReportFull = errors.New("keyboard report full")

	// ErrReportWrite indicates the report sink rejected a report.
	ErrReportWrite = errors.New("report write failed")

	// ErrShortWrite indicates the report sink accepted fewer bytes than a
	// full report.
	ErrShortWrite = errors.New("short report write")

	// ErrUnknownKey indicates a key name with no known usage code.
	ErrUnknownKey = errors.New("unknown key name")

	// ErrNoSuchLayer indicates a macropad layer that is not configured.
	ErrNoSuchLayer = errors.New("no such layer")

	// ErrNoSuchButton indicates a macropad button that is not configured.
	ErrNoSuchButton = errors.New("no such button")

	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ReportStatus is the outcome of delivering one keyboard report.
type ReportStatus int

// Report status values.
const (
	ReportStatusSent      ReportStatus = iota // Report delivered
	ReportStatusError                         // Sink returned an error
	ReportStatusShort                         // Sink accepted a partial report
	ReportStatusFull                          // No free key slot in the report
	ReportStatusCancelled                     // Delivery abandoned by cancellation
)

// String returns a string representation of the report status.
func (s ReportStatus) String() string {
	switch s {
	case ReportStatusSent:
		return "sent"
	case ReportStatusError:
		return "error"
	case ReportStatusShort:
		return "short"
	case ReportStatusFull:
		return "full"
	case ReportStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error returns the sentinel error corresponding to the status, or nil for
// ReportStatusSent.
func (s ReportStatus) Error() error {
	switch s {
	case ReportStatusSent:
		return nil
	case ReportStatusShort:
		return ErrShortWrite
	case ReportStatusFull:
		return ErrReportFull
	case ReportStatusCancelled:
		return ErrCancelled
	default:
		return ErrReportWrite
	}
}
