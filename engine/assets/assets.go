package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/ombra/engine/assets/loaders"
	"github.com/spaghettifunk/ombra/engine/core"
	"github.com/spaghettifunk/ombra/engine/resources"
)

type AssetInfo struct {
	Path       string
	Type       resources.ResourceType
	LastLoaded time.Time
}

// ReloadFn is invoked from the watcher goroutine whenever an indexed asset
// changes on disk. Implementations must be safe to call concurrently and
// should only enqueue work; actual reloading belongs on the main loop.
type ReloadFn func(info AssetInfo)

type AssetManager struct {
	baseDir string
	assets  map[string]AssetInfo
	loaders map[resources.ResourceType]Loader

	mutex    sync.RWMutex
	onReload ReloadFn

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[resources.ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize(assetsDir string) error {
	am.baseDir = assetsDir

	go am.start()

	if err := am.addRecursive(assetsDir); err != nil {
		return err
	}

	// Register loaders
	am.registerLoader(resources.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(resources.ResourceTypeSpritesheet, &loaders.SpritesheetLoader{})
	am.registerLoader(resources.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})

	return nil
}

// OnReload registers the callback fired when a watched asset changes.
func (am *AssetManager) OnReload(fn ReloadFn) {
	am.mutex.Lock()
	am.onReload = fn
	am.mutex.Unlock()
}

// AddRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	return am.watchRecursive(name, false)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType resources.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// ResolvePath maps a resource name and type to an indexed on-disk path.
// It returns an error when no file with a supported extension exists.
func (am *AssetManager) ResolvePath(name string, resourceType resources.ResourceType) (string, error) {
	var candidates []string
	switch resourceType {
	case resources.ResourceTypeImage:
		for _, ext := range []string{".png", ".jpg", ".jpeg", ".bmp"} {
			candidates = append(candidates, filepath.Join(am.baseDir, "textures", name+ext))
		}
	case resources.ResourceTypeSpritesheet:
		candidates = append(candidates, filepath.Join(am.baseDir, "textures", name+".sheet.toml"))
	case resources.ResourceTypeBitmapFont:
		candidates = append(candidates, filepath.Join(am.baseDir, "fonts", name+".fnt"))
	default:
		return "", fmt.Errorf("unknown resource type %d for asset '%s'", resourceType, name)
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("asset not found: %s", name)
}

// Load an asset using the appropriate loader
func (am *AssetManager) LoadAsset(name string, resourceType resources.ResourceType, params interface{}) (*resources.Resource, error) {
	path, err := am.ResolvePath(name, resourceType)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       resourceType,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	loader, loaderExists := am.loaders[resourceType]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %d", resourceType)
	}

	res, err := loader.Load(path, resourceType, params)
	if err != nil {
		return nil, err
	}
	res.Name = name
	return res, nil
}

func (am *AssetManager) UnloadAsset(asset *resources.Resource) error {
	if asset == nil {
		return nil
	}
	loader, ok := am.loaders[determineAssetType(asset.FullPath)]
	if !ok {
		return nil
	}
	return loader.Unload(asset)
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
}

func (am *AssetManager) start() {
	for {
		select {

		case e := <-am.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					am.watchRecursive(e.Name, false)
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name, true)
			}
			// Can't stat a deleted path, so just try to remove it from both
			// the index and the watch list.
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case e := <-am.fsnotify.Errors:
			core.LogError(e.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if unWatch {
				return am.fsnotify.Remove(walkPath)
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath, false)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string, notify bool) {
	assetType := determineAssetType(path)
	if assetType == resources.ResourceTypeNone {
		return
	}

	info := AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}

	am.mutex.Lock()
	am.assets[path] = info
	fn := am.onReload
	am.mutex.Unlock()

	if notify && fn != nil {
		fn(info)
	}
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) resources.ResourceType {
	if strings.HasSuffix(path, ".sheet.toml") {
		return resources.ResourceTypeSpritesheet
	}
	switch filepath.Ext(path) {
	case ".png", ".jpg", ".jpeg", ".bmp":
		return resources.ResourceTypeImage
	case ".fnt":
		return resources.ResourceTypeBitmapFont
	default:
		return resources.ResourceTypeNone
	}
}

// AssetName derives the cache key for an indexed path: the base file name
// stripped of its type extensions.
func AssetName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, ".sheet")
	return base
}
