package tasks

import (
	"context"
	"fmt"
)

// EuthaniseParams are the arguments of euthanise.
type EuthaniseParams struct {
	Wait bool `arg:"wait"`
}

// Euthanise deletes the selected server after confirmation. Declining is not an error.
func Euthanise(ctx context.Context, s *Session, p EuthaniseParams) error {
	_, err := euthanise(ctx, s, p.Wait)
	return err
}

// euthanise reports whether the server was deleted.
func euthanise(ctx context.Context, s *Session, wait bool) (bool, error) {
	if err := s.requireBox(); err != nil {
		return false, err
	}
	if err := s.requireCloud(); err != nil {
		return false, err
	}
	box := *s.Box

	ok, err := s.Prompter.Confirm(fmt.Sprintf("Really delete server %s:%s???", box.Name, box.ID), false)
	if err != nil {
		return false, err
	}
	if !ok {
		s.Logger.Info("Ok, not deleting!")
		return false, nil
	}

	if err := s.Cloud.DeleteServer(ctx, box.ID); err != nil {
		return false, err
	}
	if wait {
		s.Logger.Info("Waiting for server to go away...")
		if err := s.Cloud.WaitForServerDeleted(ctx, box.ID); err != nil {
			return false, err
		}
	}

	s.forgetServer(box.ID)
	if s.Host != nil {
		delete(s.Passwords, s.Host.String())
	}
	s.Box = nil
	s.Host = nil

	s.Logger.Warn("Deleted.")
	return true, nil
}
