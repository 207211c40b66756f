package world

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/levels"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func px(cell int) float64 { return float64(cell * common.TileSize) }

var itemKinds = map[string]entity.ItemKind{
	"":            entity.ItemCoin,
	"coin":        entity.ItemCoin,
	"mushroom":    entity.ItemMushroom,
	"fire-flower": entity.ItemFireFlower,
	"star":        entity.ItemStar,
}

func breakable(sprite string) bool {
	return sprite == "brick" || sprite == "brick-underground"
}

// build turns level data into a sub-map with absolute pixel positions.
func (w *World) build(data *levels.SubMap) (*Map, error) {
	m := &Map{
		Name:            data.Name,
		Columns:         data.Columns,
		Rows:            data.Rows,
		Start:           data.Start,
		End:             data.End,
		BackgroundColor: data.BackgroundColor,
		Music:           data.Music,
	}

	floor := orDefault(data.Floor.Sprite, "floor")
	for _, r := range data.Floor.Ranges {
		for i := 0; i < r.Columns; i++ {
			for j := 0; j < r.Rows; j++ {
				t := entity.NewTile(entity.TileSolid, px(r.X+i), px(r.Y+j))
				if err := t.SetSprite(w.lookup, floor); err != nil {
					return nil, err
				}
				m.Tiles.Add(t)
			}
		}
	}

	pipe := orDefault(data.Pipes.Sprite, "pipe")
	for _, p := range data.Pipes.Coord {
		var transport *entity.Transport
		if p.Transport != nil {
			transport = &entity.Transport{
				Map:       p.Transport.Map,
				Direction: p.Transport.Direction,
				Column:    p.Transport.X,
				Row:       p.Transport.Y,
			}
		}
		t := entity.NewPipe(px(p.X), px(p.Y), transport)
		if err := t.SetSprite(w.lookup, pipe); err != nil {
			return nil, err
		}
		m.Tiles.Add(t)
	}

	lucky := orDefault(data.Lucky.Sprite, "lucky")
	for _, c := range data.Lucky.Coord {
		item, ok := itemKinds[c.Item]
		if !ok {
			return nil, fmt.Errorf("lucky item %q: %w", c.Item, levels.ErrInvalidLevel)
		}
		t := entity.NewLuckyBlock(px(c.X), px(c.Y), item)
		if err := t.SetSprite(w.lookup, lucky); err != nil {
			return nil, err
		}
		m.Tiles.Add(t)
	}

	for _, group := range data.Blocks {
		kind := entity.TileSolid
		if breakable(group.Sprite) {
			kind = entity.TileBrick
		}
		for _, c := range group.Coord {
			t := entity.NewTile(kind, px(c.X), px(c.Y))
			if err := t.SetSprite(w.lookup, group.Sprite); err != nil {
				return nil, err
			}
			m.Tiles.Add(t)
		}
	}

	for _, group := range data.Background {
		for _, c := range group.Coord {
			d := entity.NewDecoration(group.Name, group.Type, px(c.X), px(c.Y))
			if err := d.SetSprite(w.lookup, group.Name); err != nil {
				return nil, err
			}
			if f := d.Frame(); f.W > 0 && f.H > 0 {
				d.Width, d.Height = float64(f.W), float64(f.H)
			}
			m.Decorations.Add(d)
		}
	}

	for _, group := range data.Enemies {
		kind, ok := entity.ParseEnemyKind(group.Name)
		if !ok {
			return nil, fmt.Errorf("enemy %q: %w", group.Name, levels.ErrInvalidLevel)
		}
		for _, c := range group.Coord {
			e := entity.NewEnemy(kind, px(c.X), px(c.Y))
			e.Speed = w.enemySpeed
			if err := e.SetSprite(w.lookup, group.Name); err != nil {
				return nil, err
			}
			m.Enemies.Add(e)
		}
	}

	coin := orDefault(data.Coins.Sprite, "big-coin")
	for _, c := range data.Coins.Coord {
		it := entity.NewItem(entity.ItemBigCoin, px(c.X), px(c.Y))
		if err := it.SetSprite(w.lookup, coin); err != nil {
			return nil, err
		}
		m.Coins.Add(it)
	}

	for _, group := range data.Checkpoints {
		for _, c := range group.Coord {
			cp := entity.NewCheckpoint(entity.CheckpointFlag, px(c.X), px(c.Y))
			if err := cp.SetSprite(w.lookup, group.Name); err != nil {
				return nil, err
			}
			m.Checkpoints.Add(cp)
		}
	}

	return m, nil
}
