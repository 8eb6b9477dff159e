package acquisition

import (
	"github.com/ishaanJ91/landsat/util"
)

// Context is the context for acquisition schedule operations
type Context struct {
	Host        string
	SatelliteID string
	sessionID   string
}

// AppName returns the service name
func (c *Context) AppName() string {
	return "landsat-overpass"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

// NewContext creates a Context using configuration from environment variables
func NewContext() *Context {
	return &Context{
		Host:        util.GetAcquisitionHost(),
		SatelliteID: util.GetSatelliteID(),
	}
}

// Record is a single parsed line of a daily acquisition schedule
type Record struct {
	Path      int
	Row       int
	DayOfYear int
	TimeOfDay string
}
