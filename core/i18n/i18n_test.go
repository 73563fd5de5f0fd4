package i18n_test

import (
	"testing"
	"time"

	"social-network/core/i18n"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"en", "en"},
		{"fr", "fr"},
		{"fr-FR,fr;q=0.9,en;q=0.8", "fr"},
		{"en-US,en;q=0.9", "en"},
		{"de-DE", "en"},
		{"garbage!!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Parse(tt.header).Code())
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 11, 23, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, "11/23/2025 at 3:30 PM", i18n.English.FormatDate(d))
	assert.Equal(t, "23/11/2025 à 15:30", i18n.French.FormatDate(d))
	assert.Equal(t, "", i18n.English.FormatDate(time.Time{}))

	assert.Nil(t, i18n.French.FormatDatePtr(nil))
	got := i18n.French.FormatDatePtr(&d)
	if assert.NotNil(t, got) {
		assert.Equal(t, "23/11/2025 à 15:30", *got)
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "User created successfully", i18n.English.Translate(i18n.UserCreated))
	assert.Equal(t, "Utilisateur créé avec succès", i18n.French.Translate(i18n.UserCreated))
	assert.Equal(t, "Commentaire supprimé avec succès", i18n.French.Translate(i18n.CommentDeleted))
	assert.Equal(t, "invalid_email", i18n.French.Translate("invalid_email"))
}
