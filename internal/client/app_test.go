// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/mock"
	"github.com/MKhiriev/go-folio/internal/service"
	"github.com/MKhiriev/go-folio/internal/tui"
	"github.com/MKhiriev/go-folio/models"
)

type stubUI struct {
	bundle models.AssetBundle
	err    error
}

func (s stubUI) Run(context.Context) (models.AssetBundle, error) {
	return s.bundle, s.err
}

func newTestServices(t *testing.T) *service.ClientServices {
	t.Helper()
	site := mock.NewMockSiteAdapter(gomock.NewController(t))
	return service.NewClientServices(site, config.ClientAssets{}, logger.Nop())
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, stubUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, stubUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(newTestServices(t), nil, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(newTestServices(t), stubUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_Run(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		ui      stubUI
		wantErr bool
	}{
		{name: "ready", ctx: context.Background(), ui: stubUI{bundle: models.AssetBundle{Foreground: "/data/profile.png"}}},
		{name: "user quit while loading", ctx: context.Background(), ui: stubUI{err: tui.ErrUserQuit}},
		{name: "signal", ctx: cancelled, ui: stubUI{err: errors.New("program was killed")}},
		{name: "ui failure", ctx: context.Background(), ui: stubUI{err: errors.New("no tty")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(newTestServices(t), tt.ui, logger.Nop())
			require.NoError(t, err)

			err = app.run(tt.ctx)

			if tt.wantErr {
				assert.ErrorContains(t, err, "client ui")
				return
			}
			assert.NoError(t, err)
		})
	}
}
