package canon

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
)

// Hot comments: ordinary comments pass through silently, but a few
// prefixes are commands in disguise.
//
//	(RPY r p y)        set the reported roll/pitch/yaw orientation
//	(PROBEOPEN <path>) open the probe log
//	(PROBECLOSE)       close the probe log

// Comment handles an interpreter comment, recognizing hot comments.
func (c *Canon) Comment(comment string) {
	switch {
	case strings.HasPrefix(comment, "RPY"):
		var r, p, y float64
		if n, _ := fmt.Sscanf(comment, "RPY %f %f %f", &r, &p, &y); n == 3 {
			c.rpy = [3]float64{r, p, y}
		}
	case strings.HasPrefix(comment, "PROBEOPEN"):
		c.probeOpen(strings.TrimSpace(comment[len("PROBEOPEN"):]))
	case strings.HasPrefix(comment, "PROBECLOSE"):
		c.probeClose()
	}
}

// RPY returns the orientation set by the last RPY hot comment.
func (c *Canon) RPY() (r, p, y float64) {
	return c.rpy[0], c.rpy[1], c.rpy[2]
}

// probeOpen opens the probe log. Quoting is honored so paths with
// spaces work. Failure is reported to the operator; probing continues
// without logging.
func (c *Canon) probeOpen(arg string) {
	name := arg
	if fields, err := shlex.Split(arg); err == nil && len(fields) > 0 {
		name = fields[0]
	}

	f, err := os.Create(name)
	if err != nil {
		c.Message("can't open probe file " + name)
		c.probeFile = nil
		return
	}
	c.probeFile = f
	c.haveLastProbe = false
}

func (c *Canon) probeClose() {
	if c.probeFile != nil {
		c.probeFile.Close()
		c.probeFile = nil
	}
}
