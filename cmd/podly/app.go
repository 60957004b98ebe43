package main

import (
	"fmt"

	"podly/internal/api"
	"podly/internal/config"
	"podly/internal/credential"
	"podly/internal/notify"
	"podly/internal/session"
	"podly/internal/storage"
)

// app wires the client's collaborators together once per command run. The
// session store owns the persisted token; everything else reads session
// state through it.
type app struct {
	client  *api.Client
	storage storage.Store
	session *session.Store
	notify  *notify.Channel
	gate    *credential.Gate
}

func newApp() (*app, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, err
	}

	client := api.NewClient(config.APIURL())

	path, err := storage.DefaultPath()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewSQLiteStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	ch := notify.NewChannel()
	sess := session.NewStore(client, store)
	gate := credential.NewGate(client, sess, ch)

	return &app{
		client:  client,
		storage: store,
		session: sess,
		notify:  ch,
		gate:    gate,
	}, nil
}

func (a *app) Close() {
	if err := a.storage.Close(); err != nil {
		fmt.Println("Warning: failed to close local storage:", err)
	}
}
