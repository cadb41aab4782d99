package engine

//go:generate mockgen -destination=./mocks/api.go -package=mocks github.com/NethermindEth/defi-runner/internal/engine API
