package monitor

import (
	"errors"
	"io"

	"github.com/ezrec/cpu8/translate"
)

var f = translate.From

var (
	ErrFrameShort  = errors.New(f("short frame"))
	ErrFrameLength = errors.New(f("frame length"))
)

// ErrShortFrame is returned when the link closes part way into a frame.
type ErrShortFrame int

func (err ErrShortFrame) Error() string {
	return f("frame truncated after %v of %v bytes", int(err), FRAME_SIZE)
}

func (err ErrShortFrame) Is(target error) bool {
	return target == ErrFrameShort || target == io.ErrUnexpectedEOF
}
