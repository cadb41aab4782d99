package locker

//go:generate mockgen -destination=./mocks/locker.go -package=mocks github.com/NethermindEth/defi-runner/internal/locker Locker
