// internal/event/types.go
package event

const (
	PlayerShot       EventType = "PlayerShot"       // basic weapon fired
	SuperShot        EventType = "SuperShot"        // charged fan fired
	EnemyKilled      EventType = "EnemyKilled"      // regular enemy removed
	BossDefeated     EventType = "BossDefeated"     // all weak points down
	BossLaserFired   EventType = "BossLaserFired"   // boss beam released
	WeakPointHit     EventType = "WeakPointHit"
	PlayerDamaged    EventType = "PlayerDamaged"    // damage actually landed
	TrapDetonated    EventType = "TrapDetonated"
	MeteorShattered  EventType = "MeteorShattered"  // destroyed or fragmented
	TreasurePicked   EventType = "TreasurePicked"
	ItemPicked       EventType = "ItemPicked"       // trap/equipment into inventory
	PowerUpCollected EventType = "PowerUpCollected"
	HazardTriggered  EventType = "HazardTriggered"
	LevelComplete    EventType = "LevelComplete"
	PlayerDied       EventType = "PlayerDied"
)
