package pkg

import (
	"fmt"

	"github.com/google/uuid"
)

func GenerateGameID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return id.String(), nil
}

func GeneratePlayerID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate player id: %w", err)
	}

	return id.String(), nil
}
