package cbr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyRateResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <KeyRateResponse xmlns="http://web.cbr.ru/">
      <KeyRateResult>
        <diffgr:diffgram xmlns:diffgr="urn:schemas-microsoft-com:xml-diffgram-v1">
          <KeyRate xmlns="">
            <KR diffgr:id="KR1"><DT>2025-12-19T00:00:00+03:00</DT><Rate>16.00</Rate></KR>
            <KR diffgr:id="KR2"><DT>2025-12-18T00:00:00+03:00</DT><Rate>16.50</Rate></KR>
          </KeyRate>
        </diffgr:diffgram>
      </KeyRateResult>
    </KeyRateResponse>
  </soap:Body>
</soap:Envelope>`

func newTestClient(url string) *CBRClient {
	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewCBRClient(url, log)
	c.now = func() time.Time { return time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestGetKeyRate(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		assert.Equal(t, "http://web.cbr.ru/KeyRate", r.Header.Get("SOAPAction"))
		_, _ = w.Write([]byte(keyRateResponse))
	}))
	defer srv.Close()

	rate, err := newTestClient(srv.URL).GetKeyRate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 16.0, rate)
	assert.Contains(t, gotBody, "<fromDate>2025-11-22</fromDate>")
	assert.Contains(t, gotBody, "<ToDate>2025-12-22</ToDate>")
}

func TestGetKeyRate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetKeyRate(context.Background())
	assert.ErrorContains(t, err, "503")
}

func TestParseXMLResponse_Malformed(t *testing.T) {
	_, err := parseXMLResponse([]byte("<KeyRate/>"))
	assert.ErrorContains(t, err, "no key rate data")

	_, err = parseXMLResponse([]byte(`<x><diffgram><KeyRate><KR><Rate>n/a</Rate></KR></KeyRate></diffgram></x>`))
	assert.ErrorContains(t, err, "failed to parse rate")

	rate, err := parseXMLResponse([]byte(`<x><diffgram><KeyRate><KR><Rate> 21,00 </Rate></KR></KeyRate></diffgram></x>`))
	require.NoError(t, err)
	assert.Equal(t, 21.0, rate)
}
