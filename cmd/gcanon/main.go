package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joushou/gocnc/gcode"
	"github.com/joushou/gocnc/vm"

	"github.com/mastercactapus/gcanon/axiscfg"
	"github.com/mastercactapus/gcanon/canon"
	"github.com/mastercactapus/gcanon/coord"
	"github.com/mastercactapus/gcanon/feed"
	"github.com/mastercactapus/gcanon/msg"
	"github.com/mastercactapus/gcanon/sim"
)

func main() {
	log.SetFlags(log.Lshortfile)

	cfgPath := flag.String("config", "axes.yml", "Axis configuration file.")
	gcodePath := flag.String("gcode", "", "G-code file to run through the canon layer.")
	feedRate := flag.Float64("feed", 600, "Feed rate in program units per minute.")
	tolerance := flag.Float64("tolerance", 0.1, "Naive-cam fusion tolerance in program units.")
	execURL := flag.String("exec", "", "Websocket URL of a trajectory executor to feed.")
	serialPort := flag.String("serial", "", "Serial port of a trajectory executor to feed.")
	baud := flag.Int("baud", 115200, "Serial baud rate.")
	addr := flag.String("addr", ":9092", "Address to bind the monitor server to.")
	flag.Parse()

	cfg, err := axiscfg.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	status := sim.NewStatus()
	status.Mask = cfg.AxisMask()
	status.LenUnits = cfg.LengthUnits
	status.AngUnits = cfg.AngleUnits

	list := msg.NewList()

	if *execURL != "" {
		list.Observe(feed.New(*execURL).Send)
	}
	if *serialPort != "" {
		sf, err := feed.OpenSerial(*serialPort, *baud)
		if err != nil {
			log.Fatal(err)
		}
		defer sf.Close()
		list.Observe(sf.Send)
	}

	eng := canon.New(cfg.Limits(), status, list)

	api := newAPI(eng)

	if *gcodePath != "" {
		if err := run(eng, *gcodePath, *feedRate, *tolerance); err != nil {
			log.Fatal(err)
		}
	}

	err = http.ListenAndServe(*addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		api.ServeHTTP(w, req)
	}))
	if err != nil {
		log.Fatal(err)
	}
}

// run replays a G-code file through the canon layer: the gocnc vm
// resolves modal state into absolute positions, and each position
// becomes a traverse or feed dispatch.
func run(eng *canon.Canon, path string, feedRate, tolerance float64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc, err := gcode.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}

	var m vm.Machine
	m.Init()
	m.Process(doc)

	eng.SetFeedRate(feedRate)
	eng.SetNaivecamTolerance(tolerance)

	for i, p := range m.Positions {
		target := coord.Pose{X: p.X, Y: p.Y, Z: p.Z}
		switch p.State.MoveMode {
		case vm.MoveModeRapid:
			eng.StraightTraverse(i+1, target)
		case vm.MoveModeLinear:
			eng.StraightFeed(i+1, target)
		}
	}
	eng.Finish()

	log.Printf("dispatched %d positions into %d messages", len(m.Positions), eng.List().Len())
	return nil
}
