package assets

import "github.com/spaghettifunk/ombra/engine/resources"

type Loader interface {
	Load(path string, assetType resources.ResourceType, params interface{}) (*resources.Resource, error)
	Unload(*resources.Resource) error
}
