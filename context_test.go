package lingo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/lingo"
)

type ContextSuite struct {
	suite.Suite
}

func TestContextSuite(t *testing.T) {
	suite.Run(t, new(ContextSuite))
}

func (s *ContextSuite) TestStoreRoundTrip() {
	registry, err := lingo.New([]string{"en"}, nil)
	s.Require().NoError(err)
	store := lingo.NewStore(registry)

	ctx := lingo.ToContext(context.Background(), store)
	s.Require().Same(store, lingo.FromContext(ctx))

	s.Require().Nil(lingo.FromContext(context.Background()))
}

func (s *ContextSuite) TestLanguageRoundTrip() {
	ctx := lingo.LanguageToContext(context.Background(), []string{"en", "sw"})
	s.Require().Equal([]string{"en", "sw"}, lingo.LanguageFromContext(ctx))

	s.Require().Nil(lingo.LanguageFromContext(context.Background()))
}

func (s *ContextSuite) TestLanguageMapRoundTrip() {
	m := lingo.LanguageToMap(map[string]string{"world": "data"}, []string{"en", "sw"})
	s.Require().Equal("en,sw", m["lang"])

	s.Require().Equal([]string{"en", "sw"}, lingo.LanguageFromMap(m))
	s.Require().Nil(lingo.LanguageFromMap(map[string]string{}))
}
