package systems

import (
	"github.com/spaghettifunk/ombra/engine/assets"
)

type SystemManager struct {
	jobSystem       *JobSystem
	assetManager    *assets.AssetManager
	textureCache    *TextureCacheSystem
	animationSystem *AnimationSystem
}

type SystemManagerConfig struct {
	AssetBasePath   string
	MaxTextureCount uint32
	WorkerCount     int
}

func NewSystemManager(config *SystemManagerConfig) (*SystemManager, error) {
	workers := config.WorkerCount
	if workers <= 0 {
		workers = 1
	}
	js, err := NewJobSystem(workers, 32)
	if err != nil {
		return nil, err
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		return nil, err
	}
	if err := am.Initialize(config.AssetBasePath); err != nil {
		return nil, err
	}

	ts, err := NewTextureCacheSystem(&TextureCacheConfig{
		MaxTextureCount: config.MaxTextureCount,
	}, js, am)
	if err != nil {
		return nil, err
	}

	asys, err := NewAnimationSystem()
	if err != nil {
		return nil, err
	}

	return &SystemManager{
		jobSystem:       js,
		assetManager:    am,
		textureCache:    ts,
		animationSystem: asys,
	}, nil
}

func (sm *SystemManager) TextureCache() *TextureCacheSystem {
	return sm.textureCache
}

func (sm *SystemManager) Animations() *AnimationSystem {
	return sm.animationSystem
}

func (sm *SystemManager) Jobs() *JobSystem {
	return sm.jobSystem
}

func (sm *SystemManager) Assets() *assets.AssetManager {
	return sm.assetManager
}

// Update runs the per-frame work of every system, on the main loop.
func (sm *SystemManager) Update(delta float64) {
	sm.textureCache.Update()
	sm.animationSystem.Update(delta)
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.jobSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.animationSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.textureCache.Shutdown(); err != nil {
		return err
	}
	return sm.assetManager.Shutdown()
}
