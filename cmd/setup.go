package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pedagogue-ai/pedagogue/internal/config"
	"github.com/pedagogue-ai/pedagogue/internal/llm"
	"github.com/pedagogue-ai/pedagogue/internal/memory"
	"github.com/pedagogue-ai/pedagogue/internal/orchestrator"
	"github.com/pedagogue-ai/pedagogue/internal/session"
	"github.com/pedagogue-ai/pedagogue/internal/standards"
	"github.com/pedagogue-ai/pedagogue/internal/store"
)

// appEnv bundles the wired application for one CLI invocation.
type appEnv struct {
	cfg   config.App
	store *store.Store
	mem   *memory.Bank
	orch  *orchestrator.Orchestrator
}

// setupApp wires provider, store, memory and orchestrator for the
// generation commands.
func setupApp(cmd *cobra.Command) (*appEnv, error) {
	appCfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := config.NewLogger(appCfg.LogLevel)

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			llmCfg = discovered
		} else {
			return nil, fmt.Errorf("no usable LLM provider: %w", err)
		}
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := llm.NewProvider(cmd.Context(), llmCfg, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, err
	}

	mem := memory.NewBank()
	if snap, err := st.SnapshotRepo().Latest(cmd.Context()); err == nil && snap != nil {
		if err := mem.ImportJSON(snap.Data); err != nil {
			log.Warn().Err(err).Msg("restore memory snapshot")
		}
	}

	orch := orchestrator.New(provider,
		standards.NewService(appCfg.StandardsDir, nil),
		mem,
		session.NewService(),
		st.EventRepo(),
		log)

	return &appEnv{cfg: appCfg, store: st, mem: mem, orch: orch}, nil
}

// persist snapshots the memory bank and closes the store.
func (e *appEnv) persist(ctx context.Context) {
	if data, err := e.mem.ExportJSON(); err == nil {
		repo := e.store.SnapshotRepo()
		if err := repo.Save(ctx, data); err == nil {
			_ = repo.Prune(ctx, e.cfg.SnapshotKeep)
		}
	}
	e.store.Close()
}
