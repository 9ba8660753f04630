package local

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain"
	"room-bot/errors"
	"strings"

	"github.com/flynn-archive/go-shlex"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var _ contract.Worker = (*Console)(nil)

const usage = `commands:
  dm <contact> <text>                 send a direct message to the bot
  say <contact> <room> <text>         post in a room
  invite <inviter> <invitee> <room>   add a member on behalf of another
  leave <contact> <room>              quit a room
  topic <contact> <room> <topic>      rename a room
  login | logout                      open or close the bot session
  contacts | rooms | sent             inspect the platform
Quote names with spaces: dm "Bruce LEE" hello`

// Console drives the local platform from a line oriented input, acting as
// the contacts the bot talks to.
type Console struct {
	log      *slog.Logger
	platform *Platform
	in       io.Reader
	out      io.Writer
}

func NewConsole(log *slog.Logger, platform *Platform, in io.Reader, out io.Writer) *Console {
	return &Console{log: log, platform: platform, in: in, out: out}
}

func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case lines <- scanner.Text():
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				c.log.Info("Console input closed")
				return nil
			}
			if err := c.Execute(ctx, line); err != nil {
				fmt.Fprintln(c.out, color.Red.Sprint(err.Error()))
			}
		}
	}
}

// Execute runs one console line.
func (c *Console) Execute(ctx context.Context, line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnknownCommand, err)
	}
	if len(args) == 0 {
		return nil
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "help":
		fmt.Fprintln(c.out, usage)
		return nil
	case "login":
		return c.platform.Login(ctx)
	case "logout":
		return c.platform.Logout(ctx)
	case "contacts":
		c.printContacts()
		return nil
	case "rooms":
		c.printRooms()
		return nil
	case "sent":
		c.printSent()
		return nil
	case "dm":
		if len(rest) < 2 {
			return c.usageError(cmd)
		}
		from, err := c.platform.ContactByName(rest[0])
		if err != nil {
			return err
		}
		return c.platform.DirectMessage(ctx, from.ID, strings.Join(rest[1:], " "))
	case "say":
		if len(rest) < 3 {
			return c.usageError(cmd)
		}
		from, err := c.platform.ContactByName(rest[0])
		if err != nil {
			return err
		}
		return c.platform.Say(ctx, from.ID, domain.RoomID(rest[1]), strings.Join(rest[2:], " "))
	case "invite":
		if len(rest) != 3 {
			return c.usageError(cmd)
		}
		inviter, err := c.platform.ContactByName(rest[0])
		if err != nil {
			return err
		}
		invitee, err := c.platform.ContactByName(rest[1])
		if err != nil {
			return err
		}
		return c.platform.Invite(ctx, inviter.ID, domain.RoomID(rest[2]), invitee.ID)
	case "leave":
		if len(rest) != 2 {
			return c.usageError(cmd)
		}
		who, err := c.platform.ContactByName(rest[0])
		if err != nil {
			return err
		}
		return c.platform.Leave(ctx, who.ID, domain.RoomID(rest[1]))
	case "topic":
		if len(rest) < 3 {
			return c.usageError(cmd)
		}
		who, err := c.platform.ContactByName(rest[0])
		if err != nil {
			return err
		}
		return c.platform.ChangeTopic(ctx, who.ID, domain.RoomID(rest[1]), strings.Join(rest[2:], " "))
	default:
		return fmt.Errorf("%w: %q, type help", errors.ErrUnknownCommand, cmd)
	}
}

func (c *Console) usageError(cmd string) error {
	return fmt.Errorf("%w: wrong arguments for %q, type help", errors.ErrUnknownCommand, cmd)
}

func (c *Console) printContacts() {
	table := c.newTable("Name", "ID", "Ready")
	for _, contact := range append([]domain.Contact{c.platform.Self()}, c.platform.Contacts()...) {
		table.Append([]string{contact.Name, string(contact.ID), fmt.Sprint(contact.Ready)})
	}
	table.Render()
}

func (c *Console) printRooms() {
	names := c.names()
	watched := c.platform.Watched()
	table := c.newTable("ID", "Topic", "Members", "Watched")
	for _, room := range c.platform.Rooms() {
		members := lo.Map(room.Members, func(id domain.ContactID, _ int) string { return names[id] })
		table.Append([]string{string(room.ID), room.Topic, strings.Join(members, ", "),
			fmt.Sprint(lo.Contains(watched, room.ID))})
	}
	table.Render()
}

func (c *Console) printSent() {
	names := c.names()
	table := c.newTable("Room", "To", "Content")
	for _, msg := range c.platform.Sent() {
		room, to := "-", "-"
		if msg.Room != nil {
			room = string(*msg.Room)
		}
		if msg.To != nil {
			to = names[*msg.To]
		}
		table.Append([]string{room, to, msg.Content})
	}
	table.Render()
}

func (c *Console) names() map[domain.ContactID]string {
	self := c.platform.Self()
	names := lo.SliceToMap(c.platform.Contacts(), func(contact domain.Contact) (domain.ContactID, string) {
		return contact.ID, contact.Name
	})
	names[self.ID] = self.Name
	return names
}

func (c *Console) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
