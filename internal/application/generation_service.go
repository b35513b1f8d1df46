package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"oracle-sdk/internal/application/port"
	"oracle-sdk/internal/codegen"
	"oracle-sdk/internal/config"
	"oracle-sdk/internal/domain"
	"oracle-sdk/internal/domain/entity"
	domainRepo "oracle-sdk/internal/domain/repository"
	"oracle-sdk/internal/metrics"
)

// File kinds reported by the generation service.
const (
	KindClient    = "client"
	KindResources = "resources"
)

// Compile-time check to ensure generationService implements GenerationService
var _ port.GenerationService = (*generationService)(nil)

// generationService implements port.GenerationService, rendering contracts on a bounded worker pool.
type generationService struct {
	manifestRepo domainRepo.ManifestRepository
	abiRepo      domainRepo.ABIRepository
	writer       domainRepo.ArtifactWriter
	logger       *zap.Logger
	maxWorkers   int
}

// NewGenerationService creates a new instance of the generation service.
func NewGenerationService(
	manifestRepo domainRepo.ManifestRepository,
	abiRepo domainRepo.ABIRepository,
	writer domainRepo.ArtifactWriter,
	logger *zap.Logger,
	cfg config.GeneratorConfig,
) port.GenerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &generationService{
		manifestRepo: manifestRepo,
		abiRepo:      abiRepo,
		writer:       writer,
		logger:       logger.Named("GenerationService"),
		maxWorkers:   cfg.MaxWorkers,
	}
}

type contractResult struct {
	index int
	abi   *entity.ContractABI
	file  *port.GeneratedFile
	err   error
}

// Generate loads the manifest, renders the selected outputs and writes them.
// Contract bindings are written as they finish; the resources file is written
// only when every contract succeeded.
func (s *generationService) Generate(ctx context.Context, opts port.GenerateOptions) ([]port.GeneratedFile, error) {
	if !opts.Clients && !opts.Resources {
		return nil, fmt.Errorf("%w: nothing selected to generate", domain.ErrInvalidManifest)
	}

	manifest, err := s.manifestRepo.Load(opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	if opts.Resources && manifest.Resources == nil {
		return nil, fmt.Errorf("%w: %s has no resources section", domain.ErrInvalidManifest, opts.ManifestPath)
	}

	runtime := manifest.Runtime
	if opts.Runtime != "" {
		runtime = opts.Runtime
	}
	gen := codegen.NewGenerator(runtime, s.logger)

	s.logger.Info("Starting generation",
		zap.String("manifest", opts.ManifestPath),
		zap.Int("contracts", len(manifest.Contracts)),
		zap.Bool("clients", opts.Clients),
		zap.Bool("resources", opts.Resources),
	)

	abis, files, err := s.processContracts(ctx, gen, manifest.Contracts, opts.Clients)
	if err != nil {
		return files, err
	}

	if opts.Resources {
		file, err := s.writeResources(gen, manifest.Resources, abis)
		if err != nil {
			return files, err
		}
		files = append(files, *file)
	}

	s.logger.Info("Generation finished", zap.Int("files", len(files)))
	return files, nil
}

// processContracts loads every ABI and, when render is set, writes its
// bindings. ABIs come back in manifest order. The first failure cancels the
// remaining jobs and is returned once all workers have stopped.
func (s *generationService) processContracts(
	ctx context.Context,
	gen *codegen.Generator,
	targets []entity.ContractTarget,
	render bool,
) ([]*entity.ContractABI, []port.GeneratedFile, error) {
	if len(targets) == 0 {
		return nil, nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	numWorkers := s.maxWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if numWorkers > len(targets) {
		numWorkers = len(targets)
	}

	jobs := make(chan int, len(targets))
	results := make(chan contractResult, len(targets))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			s.logger.Debug("Starting generation worker", zap.Int("workerID", workerID))
			for index := range jobs {
				if ctx.Err() != nil {
					results <- contractResult{index: index, err: ctx.Err()}
					continue
				}
				res := s.processContract(ctx, gen, targets[index], render)
				res.index = index
				if res.err != nil {
					cancel()
				}
				results <- res
			}
			s.logger.Debug("Generation worker finished", zap.Int("workerID", workerID))
		}(w)
	}

	for i := range targets {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	abis := make([]*entity.ContractABI, len(targets))
	written := make([]*port.GeneratedFile, len(targets))
	var firstErr error
	for res := range results {
		if res.err != nil {
			// Cancellation caused by an earlier failure is not the cause worth reporting.
			if firstErr == nil || (errors.Is(firstErr, context.Canceled) && !errors.Is(res.err, context.Canceled)) {
				firstErr = res.err
			}
			continue
		}
		abis[res.index] = res.abi
		written[res.index] = res.file
	}

	var files []port.GeneratedFile
	for _, f := range written {
		if f != nil {
			files = append(files, *f)
		}
	}

	if firstErr != nil {
		s.logger.Error("Generation failed", zap.Error(firstErr), zap.Int("written", len(files)))
		return nil, files, firstErr
	}
	return abis, files, nil
}

func (s *generationService) processContract(
	ctx context.Context,
	gen *codegen.Generator,
	target entity.ContractTarget,
	render bool,
) contractResult {
	contractABI, err := s.abiRepo.Load(ctx, target.Name, target.ABIPath)
	if err != nil {
		return contractResult{err: fmt.Errorf("failed to load ABI of %s: %w", target.Name, err)}
	}
	if !render {
		return contractResult{abi: contractABI}
	}

	src, err := gen.GenerateContract(target.Package, contractABI, target.Hooks)
	if err != nil {
		return contractResult{err: fmt.Errorf("failed to generate %s: %w", target.Name, err)}
	}
	if err := s.writer.Write(target.Output, src); err != nil {
		return contractResult{err: fmt.Errorf("failed to write %s: %w", target.Name, err)}
	}
	metrics.GeneratedFiles.WithLabelValues(KindClient).Inc()

	return contractResult{
		abi:  contractABI,
		file: &port.GeneratedFile{Kind: KindClient, Name: target.Name, Path: target.Output, Size: len(src)},
	}
}

func (s *generationService) writeResources(
	gen *codegen.Generator,
	target *entity.ResourcesTarget,
	abis []*entity.ContractABI,
) (*port.GeneratedFile, error) {
	src, err := gen.GenerateResources(target.Package, abis)
	if err != nil {
		return nil, fmt.Errorf("failed to generate resources: %w", err)
	}
	if err := s.writer.Write(target.Output, src); err != nil {
		return nil, fmt.Errorf("failed to write resources: %w", err)
	}
	metrics.GeneratedFiles.WithLabelValues(KindResources).Inc()
	return &port.GeneratedFile{Kind: KindResources, Name: target.Package, Path: target.Output, Size: len(src)}, nil
}
