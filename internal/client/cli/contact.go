package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

const defaultPageSize = 10

// List prints one page of contacts. Optional args: page number and a free
// text filter, e.g. "list 2 doe".
func (a *App) List(ctx context.Context, args []string) error {
	q := api.ListQuery{Page: 1, Size: defaultPageSize}
	if len(args) > 0 {
		if page, err := strconv.Atoi(args[0]); err == nil {
			q.Page = page
			args = args[1:]
		}
	}
	if len(args) > 0 {
		q.Search = strings.Join(args, " ")
	}

	list, err := a.contacts.List(ctx, q)
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Println("No contacts found.")
		return nil
	}
	for _, c := range list.Items {
		fmt.Println(formatRow(c))
	}
	fmt.Printf("Page %d of %d (%d total)\n", list.Page, list.Pages, list.Total)
	return nil
}

// Search runs a server-side search, e.g. "search john" or "search fav john".
func (a *App) Search(ctx context.Context, args []string) error {
	q := models.ContactSearch{}
	if len(args) > 0 && args[0] == "fav" {
		q.FavoriteOnly = true
		args = args[1:]
	}
	q.Query = strings.Join(args, " ")

	found, err := a.contacts.Search(ctx, q)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Println("No contacts found.")
		return nil
	}
	for _, c := range found {
		fmt.Println(formatRow(c))
	}
	return nil
}

// Show prints a single contact. The id comes from args or an interactive
// prompt.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.contactID(args)
	if err != nil {
		return err
	}

	c, err := a.contacts.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("#%d %s", c.ID, c.FullName)
	if c.Favorite {
		fmt.Print(" *")
	}
	fmt.Printf("\nPhone:   %s\n", c.Phone)
	if c.Email != nil {
		fmt.Printf("Email:   %s\n", *c.Email)
	}
	fmt.Printf("Address: %s\n", c.Address)
	if c.Notes != nil && *c.Notes != "" {
		fmt.Printf("Notes:\n%s\n", *c.Notes)
	}
	return nil
}

// Add collects the contact fields interactively and creates the contact.
func (a *App) Add(ctx context.Context) error {
	first, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	last, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (optional)", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := GetMultiline(a.reader, "Notes (optional):", os.Stdout)
	if err != nil {
		return err
	}

	in := models.ContactCreate{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Address:   address,
	}
	if email != "" {
		in.Email = &email
	}
	if notes != "" {
		in.Notes = &notes
	}

	c, err := a.contacts.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("Created #%d %s\n", c.ID, c.FullName)
	return nil
}

// Edit patches a single contact. Only fields the user actually types are
// sent; Enter on an empty prompt keeps the current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.contactID(args)
	if err != nil {
		return err
	}

	current, err := a.contacts.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Editing #%d %s (empty input keeps the current value)\n", current.ID, current.FullName)

	patch := models.ContactUpdate{}
	prompts := []struct {
		label   string
		current string
		field   **string
	}{
		{"First name", current.FirstName, &patch.FirstName},
		{"Last name", current.LastName, &patch.LastName},
		{"Phone", current.Phone, &patch.Phone},
		{"Address", current.Address, &patch.Address},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", p.label, p.current), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			value := v
			*p.field = &value
		}
	}

	currentEmail := ""
	if current.Email != nil {
		currentEmail = *current.Email
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", currentEmail), os.Stdout)
	if err != nil {
		return err
	}
	if email != "" {
		patch.Email = &email
	}

	updated, err := a.contacts.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Printf("Updated #%d %s\n", updated.ID, updated.FullName)
	return nil
}

// Delete removes a contact after a confirmation prompt.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.contactID(args)
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete contact #%d? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.contacts.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Deleted #%d\n", id)
	return nil
}

// Favorite toggles the favorite flag of a contact.
func (a *App) Favorite(ctx context.Context, args []string) error {
	id, err := a.contactID(args)
	if err != nil {
		return err
	}

	current, err := a.contacts.Get(ctx, id)
	if err != nil {
		return err
	}

	next := !current.Favorite
	updated, err := a.contacts.Update(ctx, id, models.ContactUpdate{Favorite: &next})
	if err != nil {
		return err
	}

	if updated.Favorite {
		fmt.Printf("#%d %s marked as favorite\n", updated.ID, updated.FullName)
	} else {
		fmt.Printf("#%d %s unmarked\n", updated.ID, updated.FullName)
	}
	return nil
}

// contactID resolves the target contact id from command args, falling back
// to an interactive prompt.
func (a *App) contactID(args []string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		v, err := getSimpleText(a.reader, "Enter contact id", os.Stdout)
		if err != nil {
			return 0, err
		}
		raw = v
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid contact id: %q", raw)
	}
	return id, nil
}

func formatRow(c *models.Contact) string {
	star := " "
	if c.Favorite {
		star = "*"
	}
	return fmt.Sprintf("%s #%-4d %-30s %s", star, c.ID, c.FullName, c.Phone)
}
