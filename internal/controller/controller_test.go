package controller

import (
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/letsdodifferent/HCLTech/internal/api"
	"github.com/letsdodifferent/HCLTech/internal/httpclient"
	"github.com/letsdodifferent/HCLTech/internal/portaltest"
)

func newTestAPI(t *testing.T, srv *portaltest.Server, token string) *api.Client {
	hc := httpclient.New(srv.URL, 5*time.Second, zaptest.NewLogger(t),
		httpclient.WithTokenFunc(func() string { return token }))
	return api.New(hc)
}
