package memcache_fx

import (
	"go.uber.org/fx"
	mem "travelexplorer/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokens, provideSessions)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func provideSessions() mem.SessionStore {
	return mem.NewSessions()
}
