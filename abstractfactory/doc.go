// Package abstractfactory teaches the Abstract Factory pattern: producing
// whole FAMILIES of related parts through one interface, so a product never
// mixes parts from incompatible families.
//
// What
//
//   - Part interfaces: Engine, Chassis, Tires — the roles every family must
//     fill.
//   - Factory: the abstract factory interface, one method per part role.
//   - Families: city (light, efficient, low-grip street tires) and offroad
//     (torquey, reinforced, high-grip knobby tires). Each family's parts are
//     designed together and tagged with the family name in Spec().
//   - Selector: ForTerrain(terrain) picks the matching family.
//
// Why
//
//	A city engine bolted to an offroad chassis is a coherent-looking bug:
//	each part is valid, the combination is not. Routing every part request
//	through one Factory value makes mixed families unrepresentable — the
//	caller holds a single factory and can only get matched parts from it.
//
//	         ForTerrain(TerrainOffroad)
//	                    │
//	                    ▼
//	        ┌──── offroad Factory ────┐
//	        ▼           ▼             ▼
//	     Engine      Chassis        Tires
//	  "offroad: …" "offroad: …"  "offroad: …"
//
// Usage
//
//	f, err := abstractfactory.ForTerrain(abstractfactory.TerrainCity)
//	if err != nil { ... }                      // ErrUnknownTerrain
//	fmt.Println(f.Engine().Spec())             // "city: 1.2L three-cylinder"
//	fmt.Println(f.Tires().Grip())              // 0.8
//
// Errors
//
//   - ErrUnknownTerrain — ForTerrain/ParseTerrain outside the enumeration.
//
// Complexity: all operations O(1); factories and parts are stateless values,
// safe to share.
package abstractfactory
