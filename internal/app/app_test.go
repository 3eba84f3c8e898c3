package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/gigledger/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NoErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}

func (s *ApplicationSuite) TestBuildReportCache_Disabled() {
	reportCache, err := s.app.buildReportCache(context.Background(), &config.Config{})

	s.Require().NoError(err)
	s.Nil(reportCache)
	s.Nil(s.app.redis)
}

func (s *ApplicationSuite) TestBuildReportCache_Unreachable() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reportCache, err := s.app.buildReportCache(ctx, &config.Config{RedisAddr: "127.0.0.1:1"})

	s.Require().Error(err)
	s.Nil(reportCache)
}

func (s *ApplicationSuite) TestGetPgxpool_InvalidDSN() {
	pool, err := getPgxpool(context.Background(), &config.Config{Database: "://not a dsn"})

	s.Require().Error(err)
	s.Nil(pool)
}
