package feed

import (
	"log"

	"github.com/tarm/serial"

	"github.com/mastercactapus/gcanon/msg"
)

// SerialFeed writes newline-framed message envelopes to a serial
// port, for executors hanging off a UART instead of a socket.
type SerialFeed struct {
	port *serial.Port
}

// OpenSerial opens the port at the given baud rate.
func OpenSerial(name string, baud int) (*SerialFeed, error) {
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, err
	}
	return &SerialFeed{port: port}, nil
}

// Send writes one message envelope. Attach with list.Observe(f.Send).
func (f *SerialFeed) Send(m msg.Message) {
	data, err := Encode(m)
	if err != nil {
		log.Println("ERROR: encode:", err)
		return
	}
	data = append(data, '\n')
	if _, err := f.port.Write(data); err != nil {
		log.Println("ERROR: write serial:", err)
	}
}

// Close closes the port.
func (f *SerialFeed) Close() error {
	return f.port.Close()
}
