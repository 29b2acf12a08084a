package monitor

import (
	"io"
	"log"
)

// Monitor relays status frames from the debug link to a Sink.
type Monitor struct {
	Count   int  // Stop after this many frames, if non-zero.
	Verbose bool // If set, logs the raw bytes of every frame.
}

// Run shows frames until the input ends, Count frames have been shown,
// or an error occurs.
func (mon *Monitor) Run(input io.Reader, sink Sink) (count int, err error) {
	for fr, ferr := range Frames(input) {
		if ferr != nil {
			err = ferr
			return
		}

		if mon.Verbose {
			raw, _ := fr.MarshalBinary()
			log.Printf("frame %v: % x\n", count, raw)
		}

		err = sink.Show(fr)
		if err != nil {
			return
		}

		count++
		if mon.Count > 0 && count >= mon.Count {
			return
		}
	}

	return
}
