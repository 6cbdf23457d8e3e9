package lingo_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/lingo"
)

type StoreSuite struct {
	suite.Suite
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) newStore() *lingo.Store {
	registry, err := lingo.New([]string{"en", "fr"}, greetingsTable())
	s.Require().NoError(err)

	return lingo.NewStore(registry)
}

func (s *StoreSuite) TestNotifiesSubscribersOnSwitch() {
	store := s.newStore()

	var seen []string
	unsubscribe := store.Subscribe(func(code string) {
		seen = append(seen, code)
	})
	defer unsubscribe()

	s.Require().NoError(store.SetLanguage("fr"))
	s.Require().Equal([]string{"fr"}, seen)
	s.Require().Equal("fr", store.Registry().Language())

	s.Require().NoError(store.SetLanguage("en"))
	s.Require().Equal([]string{"fr", "en"}, seen)
}

func (s *StoreSuite) TestRejectedSwitchNotifiesNobody() {
	store := s.newStore()

	notified := 0
	unsubscribe := store.Subscribe(func(string) { notified++ })
	defer unsubscribe()

	err := store.SetLanguage("sw")
	s.Require().Error(err)

	var unsupported *lingo.UnsupportedLanguageError
	s.Require().ErrorAs(err, &unsupported)
	s.Require().Equal("sw", unsupported.Code)

	s.Require().Zero(notified)
	s.Require().Equal("en", store.Registry().Language())
}

func (s *StoreSuite) TestUnsubscribeStopsNotifications() {
	store := s.newStore()

	notified := 0
	unsubscribe := store.Subscribe(func(string) { notified++ })

	s.Require().NoError(store.SetLanguage("fr"))
	s.Require().Equal(1, notified)

	unsubscribe()

	s.Require().NoError(store.SetLanguage("en"))
	s.Require().Equal(1, notified)
}

func (s *StoreSuite) TestSubscriberMayResubscribeDuringNotification() {
	store := s.newStore()

	var unsubscribe func()
	notified := 0
	unsubscribe = store.Subscribe(func(code string) {
		notified++

		// Reentrant subscription management must not deadlock.
		unsubscribe()
		store.Subscribe(func(string) { notified++ })
	})

	s.Require().NoError(store.SetLanguage("fr"))
	s.Require().Equal(1, notified)

	s.Require().NoError(store.SetLanguage("en"))
	s.Require().Equal(2, notified)
}

func (s *StoreSuite) TestMultipleSubscribers() {
	store := s.newStore()

	first, second := 0, 0
	defer store.Subscribe(func(string) { first++ })()
	defer store.Subscribe(func(string) { second++ })()

	s.Require().NoError(store.SetLanguage("fr"))
	s.Require().Equal(1, first)
	s.Require().Equal(1, second)
}
