// Package fixtures provides test data factories for integration testing.
//
// Each factory method creates world records with sensible defaults while
// allowing customization via option structs. Factories handle database
// insertion and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	area := f.CreateArea(t)
//	room := f.CreateRoom(t, area, 3001)
//	mob := f.CreateMobile(t, area, 3000)
package fixtures
