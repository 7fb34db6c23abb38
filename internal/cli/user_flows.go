package cli

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront/internal/modules/auth"
)

// createUser self-registers a new account. The role is always customer;
// managers and admins are promoted by an admin afterwards.
func (c *CLI) createUser(ctx context.Context) {
	name, err := c.p.Line("\tEnter name: ")
	if err != nil {
		return
	}
	password, err := c.p.Line("\tEnter password: ")
	if err != nil {
		return
	}
	lat, err := c.p.FloatChoice("\tEnter latitude: ")
	if err != nil {
		return
	}
	lng, err := c.p.FloatChoice("\tEnter longitude: ")
	if err != nil {
		return
	}

	if _, err := c.users.Register(ctx, name, password, lat, lng); err != nil {
		c.log.Error("create user", zap.Error(err))
		c.p.Printf("Could not create user: %v\n", err)
		return
	}
	c.p.Println("User successfully created!")
}

// login fills the session slot on a verbatim credential match.
func (c *CLI) login(ctx context.Context) bool {
	name, err := c.p.Line("\tEnter name: ")
	if err != nil {
		return false
	}
	password, err := c.p.Line("\tEnter password: ")
	if err != nil {
		return false
	}

	sess, err := c.auth.Login(ctx, name, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.p.Println("Invalid name or password.")
		} else {
			c.log.Error("login", zap.Error(err))
			c.p.Println("Something went wrong. Please try again.")
		}
		return false
	}
	c.p.Printf("Welcome, %s!\n", sess.Name)
	return true
}
