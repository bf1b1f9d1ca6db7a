package application

import "github.com/bnema/stitchutils/internal/domain"

type LoginCommand struct {
	Credential domain.Credential
	AppID      string
	BaseURL    string
}

type InvokeCommand struct {
	FunctionName string
	// RawArguments is parsed as JSON before anything is sent.
	RawArguments string
}
