package workflows

import (
	"context"
	"log"
)

// HelpRequest carries the help form fields. Nothing is persisted; a
// librarian follows up out of band.
type HelpRequest struct {
	Name     string
	Location string
	Message  string
}

// HelpAck acknowledges a help request.
type HelpAck struct {
	Name string
}

// RequestHelp accepts a help request and acknowledges it.
func (s *Service) RequestHelp(_ context.Context, req HelpRequest) HelpAck {
	log.Printf("Help requested by %q at %q", req.Name, req.Location)
	return HelpAck{Name: req.Name}
}
