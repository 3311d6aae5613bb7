// Package feed ships interpreter-list messages to a remote trajectory
// executor, preserving append order. The websocket transport
// reconnects forever; messages queue while disconnected.
package feed

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mastercactapus/gcanon/msg"
)

// Envelope is the wire form of one message: the kind name plus the
// variant payload.
type Envelope struct {
	Kind string      `json:"kind"`
	Msg  msg.Message `json:"msg"`
}

// Encode renders m as its wire envelope.
func Encode(m msg.Message) ([]byte, error) {
	return json.Marshal(Envelope{Kind: m.Kind().String(), Msg: m})
}

type Feed struct {
	url string

	outgoing chan []byte
}

// New starts a feed to the websocket executor at url. Attach it with
// list.Observe(f.Send).
func New(url string) *Feed {
	f := &Feed{
		url:      url,
		outgoing: make(chan []byte, 1000),
	}

	go f.loop()

	return f
}

// Send queues one message for delivery.
func (f *Feed) Send(m msg.Message) {
	data, err := Encode(m)
	if err != nil {
		log.Println("ERROR: encode:", err)
		return
	}
	f.outgoing <- data
}

func (f *Feed) loop() {
	var nextUp []byte

reconnect:
	for {
		log.Println("Connecting to", f.url)
		ws, _, err := websocket.DefaultDialer.Dial(f.url, nil)
		if err != nil {
			log.Println("ERROR: connect:", err)
			time.Sleep(3 * time.Second)
			continue
		}
		log.Println("Connected.")

		for {
			if nextUp == nil {
				nextUp = <-f.outgoing
			}
			err = ws.WriteMessage(websocket.TextMessage, nextUp)
			if err != nil {
				log.Println("ERROR: send:", err)
				ws.Close()
				continue reconnect
			}
			nextUp = nil
		}
	}
}
