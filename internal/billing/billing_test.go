package billing

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxi-booking/internal/civil"
)

func newForm(t *testing.T) *Form {
	t.Helper()
	f := New(civil.NewProvider(func() time.Time {
		return time.Date(2025, time.February, 1, 20, 0, 0, 0, time.UTC)
	}))
	for field, value := range map[string]string{
		"name":   "Ravi",
		"phone":  "8888888888",
		"pickup": "Station",
		"drop":   "Mall",
		"amount": "750",
	} {
		require.NoError(t, f.Set(field, value))
	}
	return f
}

func TestNewPrefillsISTDate(t *testing.T) {
	f := newForm(t)

	assert.Equal(t, civil.Date("2025-02-02"), f.Draft.Date)
}

func TestValidateRequiredFields(t *testing.T) {
	for _, field := range []string{"name", "phone", "date", "pickup", "drop", "amount"} {
		t.Run(field, func(t *testing.T) {
			f := newForm(t)
			require.NoError(t, f.Set(field, ""))

			err := f.Validate()

			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), field)
		})
	}

	assert.NoError(t, newForm(t).Validate(), "vehicle number is optional")
}

func TestChatLinkWithoutVehicleNumber(t *testing.T) {
	link, err := newForm(t).ChatLink("918870088020")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Vehicle No: Not Mentioned")
	assert.Contains(t, text, "Customer: Ravi")
	assert.Contains(t, text, "Total Fare: 750")
	assert.Contains(t, text, "Trip Date: 2025-02-02")
}

func TestChatLinkWithVehicleNumber(t *testing.T) {
	f := newForm(t)
	require.NoError(t, f.Set("vehicleNumber", "TN 01 AB 1234"))

	link, err := f.ChatLink("918870088020")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "Vehicle No: TN 01 AB 1234")
}

func TestChatLinkRefusesIncompleteForm(t *testing.T) {
	f := newForm(t)
	require.NoError(t, f.Set("amount", " "))

	link, err := f.ChatLink("918870088020")

	assert.ErrorIs(t, err, ErrMissingField)
	assert.Empty(t, link)
}

func TestSetUnknownField(t *testing.T) {
	assert.ErrorIs(t, newForm(t).Set("tip", "10"), ErrUnknownField)
}
