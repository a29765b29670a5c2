package main

import (
	"strings"
	"sync"

	"github.com/get-theo-ai/langfuse/internal/config"
	"github.com/get-theo-ai/langfuse/internal/logging"
	"github.com/get-theo-ai/langfuse/internal/review"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	storeOnce sync.Once
	store     *review.Store
	storeErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureStore() (*review.Store, error) {
	c.storeOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.storeErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.storeErr = err
			return
		}
		store, err := review.Open(cfg)
		if err != nil {
			c.storeErr = err
			return
		}
		c.store = store.WithLogger(logger)
	})
	return c.store, c.storeErr
}

func (c *commandContext) withStore(fn func(*review.Store) error) error {
	store, err := c.ensureStore()
	if err != nil {
		return err
	}
	return fn(store)
}
