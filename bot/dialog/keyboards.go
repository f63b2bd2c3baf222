package dialog

import "github.com/m3rciful/anorbot/bot/i18n"

// Keyboard builders. Labels are resolved for the conversation's locale at
// build time, so the telegram layer never needs the locale.

func (c *conv) row(actions ...i18n.Action) []Button {
	buttons := make([]Button, 0, len(actions))
	for _, a := range actions {
		buttons = append(buttons, Button{Text: c.label(a)})
	}
	return buttons
}

func kbRemove() *Keyboard {
	return &Keyboard{Remove: true}
}

func (c *conv) kbMenu() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionWatchProfiles, i18n.ActionLikes),
		c.row(i18n.ActionMatches, i18n.ActionSettings),
	}}
}

func (c *conv) kbSearch() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionRewind, i18n.ActionDislike, i18n.ActionLike),
		c.row(i18n.ActionReport, i18n.ActionMenu),
	}}
}

func (c *conv) kbEmptySearch() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionRewindLong, i18n.ActionMenu),
	}}
}

func (c *conv) kbMatches(hasPrev, hasNext bool) *Keyboard {
	nav := make([]Button, 0, 3)
	if hasPrev {
		nav = append(nav, Button{Text: c.label(i18n.ActionPrevPage)})
	}
	nav = append(nav, Button{Text: c.label(i18n.ActionDislike)})
	if hasNext {
		nav = append(nav, Button{Text: c.label(i18n.ActionNextPage)})
	}
	return &Keyboard{Buttons: [][]Button{
		nav,
		c.row(i18n.ActionReport, i18n.ActionMenu),
	}}
}

func (c *conv) kbSettings() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionMyProfile, i18n.ActionSearchSettings),
		c.row(i18n.ActionLanguage, i18n.ActionDeactivate),
		c.row(i18n.ActionDeleteAccount, i18n.ActionMenu),
	}}
}

func (c *conv) kbProfile() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionEditName, i18n.ActionEditBirthDate, i18n.ActionEditGender),
		c.row(i18n.ActionEditBio, i18n.ActionEditLocation, i18n.ActionEditMedia),
		c.row(i18n.ActionBack),
	}}
}

func (c *conv) kbPreferences() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionGenderPrefs, i18n.ActionAgePrefs),
		c.row(i18n.ActionBack),
	}}
}

func (c *conv) kbLanguages() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionLangUz, i18n.ActionLangRu, i18n.ActionLangEn),
	}}
}

func (c *conv) kbGenders() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionGenderMale, i18n.ActionGenderFemale),
	}}
}

func (c *conv) kbPreferredGenders() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionPreferWomen),
		c.row(i18n.ActionPreferMen),
	}}
}

func (c *conv) kbYesNo() *Keyboard {
	return &Keyboard{Buttons: [][]Button{
		c.row(i18n.ActionYes, i18n.ActionNo),
	}}
}

func (c *conv) kbSkip() *Keyboard {
	return &Keyboard{Buttons: [][]Button{c.row(i18n.ActionSkip)}}
}

func (c *conv) kbContinue() *Keyboard {
	return &Keyboard{Buttons: [][]Button{c.row(i18n.ActionContinue)}}
}

func (c *conv) kbClear() *Keyboard {
	return &Keyboard{Buttons: [][]Button{c.row(i18n.ActionClear)}}
}

func (c *conv) kbActivate() *Keyboard {
	return &Keyboard{Buttons: [][]Button{c.row(i18n.ActionActivate)}}
}

func (c *conv) kbStartRegistration() *Keyboard {
	return &Keyboard{Buttons: [][]Button{c.row(i18n.ActionStartRegistration)}}
}

func (c *conv) kbLocation() *Keyboard {
	return &Keyboard{
		Buttons: [][]Button{
			{{Text: c.label(i18n.ActionSendLocation), Location: true}},
		},
		Placeholder: c.t(i18n.MsgCityPlaceholder),
	}
}

// placesInline builds one button per found city, a row each.
func placesInline(places []placeOption) *Keyboard {
	rows := make([][]InlineButton, 0, len(places))
	for _, p := range places {
		rows = append(rows, []InlineButton{{Text: p.Name, Data: placeCallback(p.ID)}})
	}
	return &Keyboard{Inline: rows}
}

type placeOption struct {
	Name string
	ID   string
}
