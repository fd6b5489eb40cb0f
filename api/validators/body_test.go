package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Family    string `json:"family" validate:"required,oneof=IPTV CATV"`
	Prepaid   *int   `json:"prepaid" validate:"omitempty,oneof=0 1100 2200"`
	QuotedFee int    `json:"quoted_fee" validate:"min=0"`
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(newRequest(`{"family":"CATV","prepaid":1100,"quoted_fee":50000}`), &dest)
	require.NoError(t, err)
	require.Equal(t, "CATV", dest.Family)
	require.NotNil(t, dest.Prepaid)
	require.Equal(t, 1100, *dest.Prepaid)
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(newRequest(`{"family":"SAT","prepaid":1000,"quoted_fee":-1}`), &dest)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	require.Equal(t, "must be one of [IPTV CATV]", details["family"])
	require.Equal(t, "must be one of [0 1100 2200]", details["prepaid"])
	require.Equal(t, "must be at least 0", details["quoted_fee"])
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(newRequest(`{"family":"IPTV","colour":"red"}`), &dest)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyRejectsEmptyBody(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(newRequest(``), &dest)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	require.Equal(t, "request body is required", pkgerrors.As(err).Message())
}
