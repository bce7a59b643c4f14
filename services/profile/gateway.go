package profile

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Juankcba/choapp-back/services/profile PresenceGW

// PresenceGW reports realtime connection counts
type PresenceGW interface {
	OnlineCount() int
}
