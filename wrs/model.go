package wrs

import (
	"github.com/ishaanJ91/landsat/util"
)

// Context is the context for a WRS-2 ground track lookup
type Context struct {
	BaseURL   string
	sessionID string
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
	return &Context{BaseURL: util.GetWRSLookupURL()}
}

type lookupResponse struct {
	Features []lookupFeature `json:"features"`
}

type lookupFeature struct {
	Attributes lookupAttributes `json:"attributes"`
}

type lookupAttributes struct {
	Path int `json:"PATH"`
	Row  int `json:"ROW"`
}
