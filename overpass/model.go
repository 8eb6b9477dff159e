package overpass

import (
	"github.com/ishaanJ91/landsat/acquisition"
	"github.com/ishaanJ91/landsat/util"
	"github.com/ishaanJ91/landsat/wrs"
)

// Context is the context for an overpass prediction operation
type Context struct {
	WRS         *wrs.Context
	Acquisition *acquisition.Context
	CycleDays   int
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
		WRS:         wrs.NewContext(),
		Acquisition: acquisition.NewContext(),
		CycleDays:   util.GetCycleDays(),
	}
}
