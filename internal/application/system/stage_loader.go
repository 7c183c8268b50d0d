package system

import (
	"fmt"

	"github.com/younwookim/ld33/internal/domain/entity"
	"github.com/younwookim/ld33/internal/infrastructure/tilemap"
)

// Object types of the objects layer
const (
	ObjectQuestionBlock = "qblock"
	ObjectSpike         = "spike"
	ObjectTube          = "tube"
)

// LoadMapObjects converts the objects layer of m into map objects in tile
// units. Unknown object types are skipped.
func LoadMapObjects(m *tilemap.Map, s entity.Stage) ([]entity.MapObject, error) {
	var objects []entity.MapObject
	for _, o := range m.Objects {
		switch o.Type {
		case ObjectQuestionBlock:
			drops, err := o.Prop("drops")
			if err != nil {
				return nil, err
			}
			item, err := entity.ParseItemType(drops)
			if err != nil {
				return nil, fmt.Errorf("failed to load %s at (%g, %g): %w", o.Type, o.X, o.Y, err)
			}
			objects = append(objects, entity.NewQuestionBlock(s, blockRect(o), item))

		case ObjectSpike:
			objects = append(objects, entity.NewSpike(blockRect(o)))

		case ObjectTube:
			contains, err := o.Prop("contains")
			if err != nil {
				return nil, err
			}
			contents, err := entity.ParseTubeContents(contains)
			if err != nil {
				return nil, fmt.Errorf("failed to load %s at (%g, %g): %w", o.Type, o.X, o.Y, err)
			}
			r := entity.Rect{X: o.X / o.W, Y: o.Y/16 + 2, W: 1, H: 2}
			objects = append(objects, entity.NewTube(s, r, contents))
		}
	}
	return objects, nil
}

// blockRect places a one tile object. The +1 moves the editor's top-left
// anchor to the bottom-left one.
func blockRect(o tilemap.Object) entity.Rect {
	return entity.Rect{X: o.X / o.W, Y: o.Y/o.H + 1, W: 1, H: 1}
}
