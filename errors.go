package tnfs

import (
	"errors"
	"fmt"
)

// ErrProtocol is returned when the request engine exhausts its retry
// budget (max_retries consecutive attempts, five by default, each ending in
// a timeout or an unusable reply) without a response. The
// session buffer's status byte is set to StatusEPROTO at that point, the
// same value the C reference writes, but callers see this sentinel rather
// than having to inspect the buffer themselves.
var ErrProtocol = errors.New("tnfs: protocol error: retries exhausted")

// ErrEOF signals that a directory stream has no more entries. It is
// distinct from a *ServerError carrying StatusEOF: spec.md §9 flags the C
// reference's reuse of the positive EOF status as both "last batch" and
// "stream exhausted" as a wart worth not repeating, so Next returns this
// sentinel instead of a status-shaped value.
var ErrEOF = errors.New("tnfs: end of directory results")

// TransportError wraps a fatal, non-retryable transport failure: a failed
// connect, a closed socket, a resolve failure. No further commands should
// be attempted on the Client after one of these.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("tnfs: transport: %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ServerError carries a non-zero, non-EOF status byte returned by the
// server. Code is always treated as unsigned: spec.md §9 calls out the C
// reference's hazard of negating a signed char, which this type cannot
// reproduce since Code is a byte throughout.
type ServerError struct {
	Code byte
	Op   string
}

func (e *ServerError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("tnfs: %s: %s (0x%02X)", e.Op, statusText(e.Code), e.Code)
	}
	return fmt.Sprintf("tnfs: %s (0x%02X)", statusText(e.Code), e.Code)
}

// Status codes, per spec.md §6 and original_source/include/tnfs.h.
const (
	StatusOK             byte = 0x00
	StatusEPERM          byte = 0x01
	StatusENOENT         byte = 0x02
	StatusEIO            byte = 0x03
	StatusENXIO          byte = 0x04
	StatusE2BIG          byte = 0x05
	StatusEBADF          byte = 0x06
	StatusEAGAIN         byte = 0x07
	StatusENOMEM         byte = 0x08
	StatusEACCES         byte = 0x09
	StatusEBUSY          byte = 0x0A
	StatusEEXIST         byte = 0x0B
	StatusENOTDIR        byte = 0x0C
	StatusEISDIR         byte = 0x0D
	StatusEINVAL         byte = 0x0E
	StatusENFILE         byte = 0x0F
	StatusEMFILE         byte = 0x10
	StatusEFBIG          byte = 0x11
	StatusENOSPC         byte = 0x12
	StatusESPIPE         byte = 0x13
	StatusEROFS          byte = 0x14
	StatusENAMETOOLONG   byte = 0x15
	StatusENOSYS         byte = 0x16
	StatusENOTEMPTY      byte = 0x17
	StatusELOOP          byte = 0x18
	StatusENODATA        byte = 0x19
	StatusENOSTR         byte = 0x1A
	StatusEPROTO         byte = 0x1B
	StatusEBADFD         byte = 0x1C
	StatusEUSERS         byte = 0x1D
	StatusENOBUFS        byte = 0x1E
	StatusEALREADY       byte = 0x1F
	StatusESTALE         byte = 0x20
	StatusEOF            byte = 0x21
)

var statusNames = map[byte]string{
	StatusOK:           "success",
	StatusEPERM:        "operation not permitted",
	StatusENOENT:       "no such file or directory",
	StatusEIO:          "I/O error",
	StatusENXIO:        "no such device or address",
	StatusE2BIG:        "argument list too long",
	StatusEBADF:        "bad file number",
	StatusEAGAIN:       "try again",
	StatusENOMEM:       "out of memory",
	StatusEACCES:       "permission denied",
	StatusEBUSY:        "device or resource busy",
	StatusEEXIST:       "file exists",
	StatusENOTDIR:      "not a directory",
	StatusEISDIR:       "is a directory",
	StatusEINVAL:       "invalid argument",
	StatusENFILE:       "file table overflow",
	StatusEMFILE:       "too many open files",
	StatusEFBIG:        "file too large",
	StatusENOSPC:       "no space left on device",
	StatusESPIPE:       "attempt to seek on a FIFO or pipe",
	StatusEROFS:        "read-only filesystem",
	StatusENAMETOOLONG: "filename too long",
	StatusENOSYS:       "function not implemented",
	StatusENOTEMPTY:    "directory not empty",
	StatusELOOP:        "too many symbolic links encountered",
	StatusENODATA:      "no data available",
	StatusENOSTR:       "out of streams resources",
	StatusEPROTO:       "protocol error",
	StatusEBADFD:       "file descriptor in bad state",
	StatusEUSERS:       "too many users",
	StatusENOBUFS:      "no buffer space available",
	StatusEALREADY:     "operation already in progress",
	StatusESTALE:       "stale TNFS handle",
	StatusEOF:          "end of file",
}

// statusText translates a status byte to a human-readable description,
// covering the full 0x00..0x21 range plus a fallback for unknown codes.
func statusText(code byte) string {
	if s, ok := statusNames[code]; ok {
		return s
	}
	return fmt.Sprintf("unknown status 0x%02X", code)
}

// StatusText exposes the translation table to callers that want to render
// a status byte without constructing a ServerError (e.g. logging a code
// received out of band).
func StatusText(code byte) string { return statusText(code) }
