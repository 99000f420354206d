package systems

import (
	"github.com/yohamta/donburi"

	"github.com/dashware/skyhopper/components"
	"github.com/dashware/skyhopper/gamemath"
	"github.com/dashware/skyhopper/tags"
)

// moveAndResolve integrates the entity by velocity*dt, then pushes it out of
// any overlapping platform along the axis of smaller overlap. Velocity on the
// resolved axis is zeroed. Grounded is recomputed from scratch: it is true
// only if this frame's resolution pushed the entity up.
//
// Returns the platform entries the entity landed on this frame.
func moveAndResolve(obj *components.ObjectData, phys *components.PhysicsData, dt float64) []*donburi.Entry {
	obj.X += phys.Velocity.X * dt
	obj.Y += phys.Velocity.Y * dt
	obj.Update()

	phys.Grounded = false
	var landed []*donburi.Entry

	check := obj.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return nil
	}
	for _, pObj := range check.Objects {
		rect := obj.Rect()
		pRect := gamemath.NewRect(pObj.X, pObj.Y, pObj.W, pObj.H)
		if !rect.Intersects(pRect) {
			continue
		}
		dx, dy := rect.Overlap(pRect)
		if dx < dy {
			// Push out horizontally, away from the platform's center.
			if rect.CenterX() < pRect.CenterX() {
				obj.X -= dx
			} else {
				obj.X += dx
			}
			phys.Velocity.X = 0
		} else {
			if rect.CenterY() < pRect.CenterY() {
				obj.Y -= dy
				if phys.Velocity.Y >= 0 {
					phys.Grounded = true
					if entry, ok := pObj.Data.(*donburi.Entry); ok {
						landed = append(landed, entry)
					}
				}
				if phys.Velocity.Y > 0 {
					phys.Velocity.Y = 0
				}
			} else {
				obj.Y += dy
				if phys.Velocity.Y < 0 {
					phys.Velocity.Y = 0
				}
			}
		}
		obj.Update()
	}
	return landed
}
