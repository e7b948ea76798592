package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Profile shows the current profile, or edits it with `profile edit`.
func (a *App) Profile(args []string) {
	if wantsHelp(args) {
		fmt.Fprintln(a.out, "Usage: profile [edit] [--user:<id>]")
		fmt.Fprintln(a.out, "Without arguments shows your own profile; --user shows someone else's.")
		return
	}
	self, ok := a.requireLogin()
	if !ok {
		return
	}

	if len(args) > 0 && args[0] == "edit" {
		a.editProfile()
		return
	}

	if id := argValue(args, "--user:"); id != "" {
		ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
		defer cancel()
		u, err := a.api.ProfileByID(ctx, id)
		if err != nil {
			a.toasts.ErrorMsg("Failed to fetch that profile.")
			log.Debug().Err(err).Msg("profile fetch failed")
			return
		}
		a.printCard(*u)
		return
	}

	a.printCard(*self)
	if self.EmailID != "" {
		fmt.Fprintf(a.out, "Email: %s\n", self.EmailID)
	}
}

// editProfile walks the editable fields; an empty answer keeps the
// current value. Validation failures stop before any network call.
func (a *App) editProfile() {
	self := a.users.Get()
	fields := map[string]any{}

	ask := func(label, current string) string {
		return a.promptLine(fmt.Sprintf("%s [%s]: ", label, current))
	}

	if v := ask("First name", self.FirstName); v != "" {
		fields["firstName"] = v
	}
	if v := ask("Last name", self.LastName); v != "" {
		fields["lastName"] = v
	}
	if v := ask("About", self.About); v != "" {
		fields["about"] = v
	}
	if v := ask("Location", self.Location); v != "" {
		fields["location"] = v
	}
	if v := ask("Age", strconv.Itoa(self.Age)); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil || age < 18 || age > 100 {
			a.toasts.WarningMsg("Age must be a number between 18 and 100.")
			return
		}
		fields["age"] = age
	}
	if v := ask("Gender", self.Gender); v != "" {
		fields["gender"] = strings.ToLower(v)
	}
	if v := ask("Skills (comma separated)", strings.Join(self.Skills, ", ")); v != "" {
		var skills []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
		fields["skills"] = skills
	}
	if v := ask("GitHub URL", self.GithubURL); v != "" {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			a.toasts.WarningMsg("GitHub URL must start with http:// or https://.")
			return
		}
		fields["githubUrl"] = v
	}

	if len(fields) == 0 {
		fmt.Fprintln(a.out, "Nothing to update.")
		return
	}

	ctx, cancel := ctxWithTimeout(a.cfg.Server.Timeout())
	defer cancel()
	updated, err := a.api.EditProfile(ctx, fields)
	if err != nil {
		a.toasts.ErrorMsg("Failed to update profile.")
		log.Debug().Err(err).Msg("profile edit failed")
		return
	}

	a.users.Set(updated)
	a.toasts.SuccessMsg("Profile updated successfully!")
}
