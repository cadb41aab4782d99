package prompter

//go:generate mockgen -destination=./mocks/prompter.go -package=mocks github.com/NethermindEth/defi-runner/internal/prompter Prompter
