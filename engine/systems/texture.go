package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/ombra/engine/assets"
	"github.com/spaghettifunk/ombra/engine/containers"
	"github.com/spaghettifunk/ombra/engine/core"
	"github.com/spaghettifunk/ombra/engine/resources"
)

type TextureCacheConfig struct {
	/** @brief The maximum number of textures that can be resident at once. */
	MaxTextureCount uint32
}

const reloadQueueSize = 256

/**
 * @brief The resource cache for static sprite textures.
 *
 * Textures are loaded from disk through the asset manager, decoded once and
 * kept resident in a fixed-capacity slot table. Lookups (GetImage,
 * IsMultiFrame, GetFrameData) are synchronous in-memory reads and never
 * touch the filesystem; residency is established up front via Load, Acquire
 * or Preload.
 *
 * Multi-frame classification happens at load time: a texture with a sidecar
 * spritesheet descriptor (<name>.sheet.toml) or a bitmap-font atlas
 * descriptor (<name>.fnt) carries frame data, everything else is single
 * frame.
 */
type TextureCacheSystem struct {
	config *TextureCacheConfig
	// Slot table of resident textures.
	registeredTextures []*resources.Texture
	// Hashtable for texture lookups.
	registeredTextureTable map[string]*resources.TextureReference
	// Frame metadata for multi-frame keys.
	frameData map[string]*resources.FrameData

	// Hot-reload requests queued by the watcher goroutine, drained by Update
	// on the main loop.
	pendingReloads *containers.RingQueue[string]

	mutex sync.RWMutex

	// sub systems
	jobSystem    *JobSystem
	assetManager *assets.AssetManager
}

func NewTextureCacheSystem(config *TextureCacheConfig, js *JobSystem, am *assets.AssetManager) (*TextureCacheSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("func NewTextureCacheSystem - config.MaxTextureCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}

	ts := &TextureCacheSystem{
		config:                 config,
		registeredTextures:     make([]*resources.Texture, config.MaxTextureCount),
		registeredTextureTable: make(map[string]*resources.TextureReference),
		frameData:              make(map[string]*resources.FrameData),
		pendingReloads:         containers.NewRingQueue[string](reloadQueueSize),
		jobSystem:              js,
		assetManager:           am,
	}

	// Invalidate all textures in the slot table.
	for i := uint32(0); i < config.MaxTextureCount; i++ {
		ts.registeredTextures[i] = &resources.Texture{
			ID:         resources.InvalidID,
			Generation: resources.InvalidID,
		}
	}

	if am != nil {
		am.OnReload(ts.queueReload)
	}

	return ts, nil
}

func (ts *TextureCacheSystem) Shutdown() error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	for i := uint32(0); i < ts.config.MaxTextureCount; i++ {
		t := ts.registeredTextures[i]
		if t.Generation != resources.InvalidID {
			ts.evictSlot(t)
		}
	}
	ts.registeredTextureTable = make(map[string]*resources.TextureReference)
	ts.frameData = make(map[string]*resources.FrameData)
	return nil
}

/**
 * @brief Loads the named texture into residency, synchronously. Loading an
 * already resident texture is a no-op. The slot is created with a zero
 * reference count; use Acquire for reference-counted access.
 */
func (ts *TextureCacheSystem) Load(name string) error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	if ref, ok := ts.registeredTextureTable[name]; ok && ref.Handle != resources.InvalidID {
		return nil
	}
	_, err := ts.loadLocked(name, false)
	return err
}

// Preload kicks off background loads for the given keys through the job
// system. Useful at startup; lookups only see each texture once its load
// commits.
func (ts *TextureCacheSystem) Preload(names ...string) {
	for _, name := range names {
		n := name
		ts.jobSystem.Submit(JobTask{
			JobType:  JOB_TYPE_RESOURCE_LOAD,
			Priority: JOB_PRIORITY_NORMAL,
			OnStart: func(params interface{}, resultChan chan<- interface{}) error {
				resultChan <- n
				return ts.Load(n)
			},
			OnComplete: func(resultChan <-chan interface{}) {
				if v, ok := <-resultChan; ok {
					core.LogDebug("preloaded texture '%s'", v)
				}
			},
			OnFailure: func(resultChan <-chan interface{}) {
				if v, ok := <-resultChan; ok {
					core.LogError("failed to preload texture '%s'", v)
				}
			},
		})
	}
}

/**
 * @brief Acquires a reference to the named texture, loading it if it is not
 * yet resident. The reference count is incremented; textures acquired with
 * autoRelease are evicted when their count drops back to zero.
 */
func (ts *TextureCacheSystem) Acquire(name string, autoRelease bool) (*resources.Texture, error) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	ref, ok := ts.registeredTextureTable[name]
	if !ok || ref.Handle == resources.InvalidID {
		tex, err := ts.loadLocked(name, autoRelease)
		if err != nil {
			return nil, err
		}
		ref = ts.registeredTextureTable[name]
		ref.ReferenceCount++
		return tex, nil
	}

	ref.ReferenceCount++
	return ts.registeredTextures[ref.Handle], nil
}

/**
 * @brief Releases a reference to the named texture. When the last reference
 * of an auto-release texture goes away, its slot is evicted.
 */
func (ts *TextureCacheSystem) Release(name string) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	ref, ok := ts.registeredTextureTable[name]
	if !ok || ref.Handle == resources.InvalidID {
		core.LogWarn("tried to release non-existent texture: '%s'", name)
		return
	}
	if ref.ReferenceCount == 0 {
		core.LogWarn("tried to release texture '%s' with zero references", name)
		return
	}

	ref.ReferenceCount--
	if ref.ReferenceCount == 0 && ref.AutoRelease {
		t := ts.registeredTextures[ref.Handle]
		ts.evictSlot(t)
		delete(ts.registeredTextureTable, name)
		delete(ts.frameData, name)
		core.LogDebug("evicted texture '%s'", name)
	}
}

// GetImage returns the resident texture for key, or nil on a miss. It never
// loads from disk; a miss means the key was not made resident beforehand.
func (ts *TextureCacheSystem) GetImage(key string) *resources.Texture {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	ref, ok := ts.registeredTextureTable[key]
	if !ok || ref.Handle == resources.InvalidID {
		return nil
	}
	return ts.registeredTextures[ref.Handle]
}

// IsMultiFrame classifies whether key denotes a spritesheet/atlas.
func (ts *TextureCacheSystem) IsMultiFrame(key string) bool {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	_, ok := ts.frameData[key]
	return ok
}

// GetFrameData returns the frame-slicing metadata for a multi-frame key,
// or nil for single-frame and non-resident keys.
func (ts *TextureCacheSystem) GetFrameData(key string) *resources.FrameData {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	return ts.frameData[key]
}

/**
 * @brief Drains pending hot-reload requests. Must be called from the main
 * loop so all texture mutation stays on one goroutine.
 */
func (ts *TextureCacheSystem) Update() {
	for {
		ts.mutex.Lock()
		key, err := ts.pendingReloads.Dequeue()
		ts.mutex.Unlock()
		if err != nil {
			return
		}
		if err := ts.reload(key); err != nil {
			core.LogError("failed to reload texture '%s': %s", key, err.Error())
		}
	}
}

// queueReload runs on the fsnotify watcher goroutine. It only enqueues; the
// actual reload happens in Update.
func (ts *TextureCacheSystem) queueReload(info assets.AssetInfo) {
	key := assets.AssetName(info.Path)

	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	ref, ok := ts.registeredTextureTable[key]
	if !ok || ref.Handle == resources.InvalidID {
		// Not resident, nothing to refresh.
		return
	}
	if err := ts.pendingReloads.Enqueue(key); err != nil {
		core.LogWarn("reload queue full, dropping refresh for '%s'", key)
	}
}

// reload re-decodes the asset into the existing texture slot, bumping its
// generation. Bindings keep their pointer; read-through dimension queries
// observe the new geometry immediately.
func (ts *TextureCacheSystem) reload(key string) error {
	imgResource, err := ts.assetManager.LoadAsset(key, resources.ResourceTypeImage, &resources.ImageResourceParams{})
	if err != nil {
		return err
	}
	data, ok := imgResource.Data.(*resources.ImageResourceData)
	if !ok {
		return fmt.Errorf("image loader returned unexpected data for '%s'", key)
	}

	ts.mutex.Lock()
	ref, exists := ts.registeredTextureTable[key]
	if !exists || ref.Handle == resources.InvalidID {
		ts.mutex.Unlock()
		return nil
	}
	t := ts.registeredTextures[ref.Handle]
	t.Width = data.Width
	t.Height = data.Height
	t.ChannelCount = data.ChannelCount
	t.Pixels = data.Pixels
	t.Generation++
	ts.loadFrameDataLocked(key)
	ts.mutex.Unlock()

	ctx := core.EventContext{}
	ctx.Data.C[0] = key
	core.EventFire(core.EVENT_CODE_ASSET_RELOADED, ts, ctx)

	core.LogInfo("reloaded texture '%s' (%dx%d)", key, data.Width, data.Height)
	return nil
}

// loadLocked performs the full synchronous load into a free slot. Callers
// hold ts.mutex.
func (ts *TextureCacheSystem) loadLocked(name string, autoRelease bool) (*resources.Texture, error) {
	slot := resources.InvalidID
	for i := uint32(0); i < ts.config.MaxTextureCount; i++ {
		if ts.registeredTextures[i].ID == resources.InvalidID {
			slot = i
			break
		}
	}
	if slot == resources.InvalidID {
		core.LogError("texture cache cannot hold any more textures, adjust MaxTextureCount")
		return nil, core.ErrCacheFull
	}

	imgResource, err := ts.assetManager.LoadAsset(name, resources.ResourceTypeImage, &resources.ImageResourceParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to load image resource for texture '%s': %w", name, err)
	}
	data, ok := imgResource.Data.(*resources.ImageResourceData)
	if !ok {
		return nil, fmt.Errorf("image loader returned unexpected data for '%s'", name)
	}

	t := ts.registeredTextures[slot]
	t.ID = slot
	t.Name = name
	t.Width = data.Width
	t.Height = data.Height
	t.ChannelCount = data.ChannelCount
	t.Pixels = data.Pixels
	t.Generation = 0

	ts.registeredTextureTable[name] = &resources.TextureReference{
		Handle:      slot,
		AutoRelease: autoRelease,
	}
	ts.loadFrameDataLocked(name)

	return t, nil
}

// loadFrameDataLocked refreshes the multi-frame classification of a key from
// its sidecar descriptor, if any. Callers hold ts.mutex.
func (ts *TextureCacheSystem) loadFrameDataLocked(name string) {
	for _, rt := range []resources.ResourceType{resources.ResourceTypeSpritesheet, resources.ResourceTypeBitmapFont} {
		res, err := ts.assetManager.LoadAsset(name, rt, nil)
		if err != nil {
			continue
		}
		if fd, ok := res.Data.(*resources.FrameData); ok {
			ts.frameData[name] = fd
			return
		}
	}
	delete(ts.frameData, name)
}

// evictSlot resets a slot for reuse. Callers hold ts.mutex.
func (ts *TextureCacheSystem) evictSlot(t *resources.Texture) {
	t.ID = resources.InvalidID
	t.Generation = resources.InvalidID
	t.Name = ""
	t.Pixels = nil
	t.Width = 0
	t.Height = 0
}
