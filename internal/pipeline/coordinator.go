package pipeline

import (
	"sync"

	"cube-netter/internal/config"
	"cube-netter/internal/logger"
	"cube-netter/internal/opencv/safe"
	"cube-netter/internal/vision"
)

// RunOptions parameterizes one pipeline run. OnStage, when set, is called
// with each stage name before the stage starts.
type RunOptions struct {
	Prefix  string
	Ext     string
	Output  string
	OnStage func(stage string)
}

// Coordinator wires the vision components together and drives one run from
// five photographs to a written net image. It is the only surface exposed
// toward callers; all failures come back as typed errors.
type Coordinator struct {
	cfg       *config.Config
	log       logger.Logger
	loader    *Loader
	saver     *Saver
	segmenter *vision.Segmenter
	cropper   *vision.Cropper
	analyzer  *vision.Analyzer
	resolver  *vision.Resolver
	stitcher  *vision.Stitcher
}

func NewCoordinator(cfg *config.Config, log logger.Logger) *Coordinator {
	segmenter := vision.NewSegmenter(log)

	return &Coordinator{
		cfg:       cfg,
		log:       log,
		loader:    NewLoader(log),
		saver:     NewSaver(log),
		segmenter: segmenter,
		cropper:   vision.NewCropper(log),
		analyzer:  vision.NewAnalyzer(cfg, segmenter, log),
		resolver:  vision.NewResolver(log),
		stitcher:  vision.NewStitcher(cfg.FaceHeight, log),
	}
}

// Run executes the full pipeline for one photograph set.
func (c *Coordinator) Run(opts RunOptions) error {
	stage := func(name string) {
		if opts.OnStage != nil {
			opts.OnStage(name)
		}
	}

	stage("load")
	photos, err := c.loader.LoadSet(opts.Prefix, opts.Ext)
	if err != nil {
		return err
	}
	defer closeAll(photos)

	stage("analyze")
	faces, maps, err := c.analyzeFaces(photos)
	if err != nil {
		return err
	}
	defer closeAll(faces)

	stage("resize")
	resized, err := c.stitcher.ResizeAll(faces)
	if err != nil {
		return err
	}
	defer closeAll(resized)

	stage("resolve")
	widths := make([]int, len(resized))
	for i, face := range resized {
		widths[i] = face.Cols()
	}
	layout, err := c.resolver.Resolve(maps, widths)
	if err != nil {
		return err
	}

	stage("stitch")
	net, err := c.stitcher.Compose(resized, layout)
	if err != nil {
		return err
	}
	defer net.Close()

	stage("save")
	return c.saver.Save(opts.Output, net)
}

// analyzeFaces crops and analyzes the five photographs concurrently. Each
// photograph's derived data is local to its index, so the goroutines share
// nothing but the result slices.
func (c *Coordinator) analyzeFaces(photos []*safe.Mat) ([]*safe.Mat, []vision.ColorMap, error) {
	background := c.cfg.ColorProfiles[c.cfg.BackgroundColor]

	faces := make([]*safe.Mat, len(photos))
	maps := make([]vision.ColorMap, len(photos))
	errs := make([]error, len(photos))

	var wg sync.WaitGroup
	for i := range photos {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			faces[i], maps[i], errs[i] = c.analyzeOne(photos[i], i, background)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			closeAll(faces)
			return nil, nil, err
		}
	}

	return faces, maps, nil
}

func (c *Coordinator) analyzeOne(photo *safe.Mat, index int, background config.ColorProfile) (*safe.Mat, vision.ColorMap, error) {
	mask, err := c.segmenter.Mask(photo, background)
	if err != nil {
		return nil, nil, err
	}
	defer mask.Close()

	face, err := c.cropper.Crop(photo, mask)
	if err != nil {
		return nil, nil, err
	}

	colorMap, err := c.analyzer.Analyze(face, index)
	if err != nil {
		face.Close()
		return nil, nil, err
	}

	return face, colorMap, nil
}
