package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizer_ResolvesLanguage(t *testing.T) {
	tr, err := New("fr")
	require.NoError(t, err)

	cases := []struct {
		prefs []string
		want  string
	}{
		{nil, "fr"},
		{[]string{""}, "fr"},
		{[]string{"en-US,en;q=0.9"}, "en"},
		{[]string{"fr-FR"}, "fr"},
		{[]string{"", "en"}, "en"},
		{[]string{"not a tag!!"}, "fr"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tr.Localizer(tc.prefs...).Lang(), "%v", tc.prefs)
	}
}

func TestLocalizer_T(t *testing.T) {
	tr := MustNew("fr")

	assert.Equal(t, "Adresse email invalide", tr.Localizer("fr").T("validation.email.invalid", nil))
	assert.Equal(t, "Invalid email address", tr.Localizer("en").T("validation.email.invalid", nil))
	assert.Equal(t, "Hello! I need more information about: HP", tr.Localizer("en").T("whatsapp.product_question", map[string]any{"Name": "HP"}))
}

func TestLocalizer_MissingIDReturnsID(t *testing.T) {
	tr := MustNew("en")
	assert.Equal(t, "does.not.exist", tr.Localizer("en").T("does.not.exist", nil))
}

func TestLocalizer_N(t *testing.T) {
	tr := MustNew("en")

	en := tr.Localizer("en")
	assert.Equal(t, "1 product found", en.N("products.count", 1, nil))
	assert.Equal(t, "3 products found", en.N("products.count", 3, nil))

	fr := tr.Localizer("fr")
	assert.Equal(t, "0 produit trouvé", fr.N("products.count", 0, nil))
	assert.Equal(t, "12 produits trouvés", fr.N("products.count", 12, nil))
}

func TestCataloguesHaveSameIDs(t *testing.T) {
	tr := MustNew("en")
	en, fr := tr.Localizer("en"), tr.Localizer("fr")

	for _, id := range []string{
		"validation.name.min", "validation.phone.max", "contact.success.title",
		"contact.failure.description", "products.empty.filtered", "product.not_found.title",
		"services.steps",
	} {
		assert.NotEqual(t, id, en.T(id, nil), id)
		assert.NotEqual(t, id, fr.T(id, nil), id)
	}
}
