package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T, number, lang string) *Builder {
	t.Helper()
	tr, err := i18n.New("fr")
	require.NoError(t, err)
	return New(number, tr.Localizer(lang))
}

func decodedText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "22900000000", Digits("+229 00 00 00 00"))
	assert.Equal(t, "237123456789", Digits("237-123-456-789"))
	assert.Equal(t, "", Digits("+237XXXXXXXXX"))
}

func TestEncode_SpacesArePercent20(t *testing.T) {
	assert.Equal(t, "Hello%20world%21", Encode("Hello world!"))
	assert.Equal(t, "a%2Bb", Encode("a+b"))
	assert.Equal(t, "caf%C3%A9%0Aok", Encode("café\nok"))
}

func TestLink(t *testing.T) {
	b := newBuilder(t, "+229 00 00 00 00", "en")

	assert.Equal(t, "https://wa.me/22900000000?text=Hi%20there", b.Link("Hi there"))
	assert.Equal(t, "https://wa.me/22900000000", b.Link("  "))
}

func TestContextMessages(t *testing.T) {
	b := newBuilder(t, "22900000000", "fr")

	assert.Equal(t, "Bonjour ! J'aimerais entrer en contact avec vous.", decodedText(t, b.ContactInquiry()))
	assert.Equal(t, "Bonjour ! J'aimerais en savoir plus sur vos services.", decodedText(t, b.ServicesInquiry()))
	assert.Equal(t, "Bonjour ! J'aimerais connaître l'emplacement de vos magasins partenaires.", decodedText(t, b.StoreLocation()))
	assert.True(t, strings.HasPrefix(b.GeneralInquiry(), "https://wa.me/22900000000?text=Bonjour"))
}

func TestProductMessages(t *testing.T) {
	b := newBuilder(t, "22900000000", "en")
	p := &model.Product{Name: "HP Pavilion 15", Brand: "HP", Price: decimal.NewFromInt(450000)}

	order := decodedText(t, b.ProductOrder(p, "NIASOTAC TECHNOLOGIE", "FCFA"))
	assert.Contains(t, order, "Hello NIASOTAC TECHNOLOGIE")
	assert.Contains(t, order, "*HP Pavilion 15*")
	assert.Contains(t, order, "Brand: HP")
	assert.Contains(t, order, "Price: 450,000 FCFA")

	question := decodedText(t, b.ProductQuestion(p))
	assert.Equal(t, "Hello! I need more information about: HP Pavilion 15", question)
}

func TestProductOrder_MissingBrand(t *testing.T) {
	b := newBuilder(t, "22900000000", "en")
	p := &model.Product{Name: "Dell OptiPlex Tower", Price: decimal.NewFromInt(280000)}

	assert.Contains(t, decodedText(t, b.ProductOrder(p, "X", "FCFA")), "Brand: N/A")
}
