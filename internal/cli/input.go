package cli

import (
	"encoding/json"
	"os"

	"github.com/journeyscribe/journeyscribe/internal/domain"
)

// The input files are the already-fetched output of the remote service;
// retrieval itself is out of scope here.

func loadJourney(path string) (domain.Journey, error) {
	var journey domain.Journey
	data, err := os.ReadFile(path)
	if err != nil {
		return journey, domain.NewError("decode", path, 0, "failed to read journey file", err)
	}
	if err := json.Unmarshal(data, &journey); err != nil {
		return journey, domain.NewError("decode", path, 0, "failed to parse journey file", err)
	}
	return journey, nil
}

func loadExecution(path string) (*domain.Execution, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("decode", path, 0, "failed to read execution file", err)
	}
	var execution domain.Execution
	if err := json.Unmarshal(data, &execution); err != nil {
		return nil, domain.NewError("decode", path, 0, "failed to parse execution file", err)
	}
	return &execution, nil
}

func loadEnvironments(path string) ([]domain.Environment, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("decode", path, 0, "failed to read environments file", err)
	}
	var envs []domain.Environment
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, domain.NewError("decode", path, 0, "failed to parse environments file", err)
	}
	return envs, nil
}
