package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"

	"github.com/mastercactapus/gcanon/canon"
	"github.com/mastercactapus/gcanon/feed"
	"github.com/mastercactapus/gcanon/msg"
)

type api struct {
	http.Handler
	eng *canon.Canon
	sse *sse.Server
}

func newAPI(eng *canon.Canon) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		eng:     eng,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
	}

	r.HandleFunc("/api/messages", a.messages).Methods("GET")
	r.HandleFunc("/api/position", a.position).Methods("GET")
	r.PathPrefix("/events/").Handler(a.sse)

	eng.List().Observe(func(m msg.Message) {
		data, err := feed.Encode(m)
		if err != nil {
			log.Printf("ERROR: marshal json: %+v", err)
			return
		}
		a.sse.SendMessage("/events/messages", sse.SimpleMessage(string(data)))
	})

	return a
}

func (a *api) messages(w http.ResponseWriter, req *http.Request) {
	msgs := a.eng.List().Messages()
	out := make([]feed.Envelope, len(msgs))
	for i, m := range msgs {
		out[i] = feed.Envelope{Kind: m.Kind().String(), Msg: m}
	}
	err := json.NewEncoder(w).Encode(out)
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) position(w http.ResponseWriter, req *http.Request) {
	err := json.NewEncoder(w).Encode(a.eng.Position())
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}
