package tasks

import (
	"context"
	"fmt"

	"go.trai.ch/herd/internal/core/domain"
)

// HerdParams are the arguments of herd.
type HerdParams struct {
	Name    string `arg:"name,required"`
	Newborn bool   `arg:"newborn"`
}

// Herd selects the server called Name and prepares root access to it.
//
// A server created during this run still carries its admin password; any
// other server gets a fresh one, since herd may never have had access to it.
// With Newborn the already selected server is kept and only its addresses are
// refreshed.
func Herd(ctx context.Context, s *Session, p HerdParams) error {
	if err := s.requireCloud(); err != nil {
		return err
	}
	if err := s.refreshBoxen(ctx); err != nil {
		return err
	}

	fresh, found := s.server(p.Name)
	switch {
	case p.Newborn && s.Box != nil && s.Box.Name == p.Name:
		if found {
			fresh.AdminPass = s.Box.AdminPass
			s.Box = &fresh
		}
	case found:
		s.Box = &fresh
	default:
		return serverNotFound(p.Name)
	}

	host, err := domain.NewHost(*s.Box)
	if err != nil {
		return err
	}
	host.KnownHosts = s.setting(domain.KeyKnownHosts)

	password, ok := s.Passwords[host.String()]
	if !ok {
		password = s.Box.AdminPass
		if password == "" {
			password = s.NewPassword()
			if err := s.Cloud.ChangePassword(ctx, s.Box.ID, password); err != nil {
				return err
			}
			s.Logger.Warn("Changed password of server to: " + password)
			if err := s.Sleep(ctx, PasswordSettle); err != nil {
				return err
			}
		}
		s.Passwords[host.String()] = password
	}
	host.Password = password
	s.Host = &host

	s.Logger.Info(fmt.Sprintf("Ok, found server %s:%s", s.Box.Name, s.Box.ID))
	return nil
}

// Shell opens an interactive ssh session to the selected host.
func Shell(ctx context.Context, s *Session, _ struct{}) error {
	host, err := s.requireHost()
	if err != nil {
		return err
	}

	s.Logger.Warn("Password is currently: " + host.Password)

	var args []string
	if host.KnownHosts != "" {
		args = append(args, "-o", "UserKnownHostsFile="+host.KnownHosts)
	}
	if host.Port != domain.DefaultSSHPort {
		args = append(args, "-p", fmt.Sprint(host.Port))
	}
	args = append(args, host.Login())

	return s.Local.Interactive(ctx, domain.Command{Name: "ssh", Args: args})
}
