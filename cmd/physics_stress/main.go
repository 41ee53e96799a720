// Stress test comparing spatial hash vs brute force sphere overlap detection
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/sync/errgroup"

	"spheremove/internal/broadphase"
	"spheremove/internal/collision"
	"spheremove/internal/engine"
	"spheremove/internal/logging"
	"spheremove/internal/physics"
)

type report struct {
	count     int
	hashTime  time.Duration
	bruteTime time.Duration
	pairs     int
	moverTime time.Duration
	moverHits int
	cells     int
	digest    uint64
}

func main() {
	cellSize := flag.Float64("cell", 2, "spatial hash cell size")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	log := logging.New(logging.LevelInfo)
	defer log.Sync()

	// Test various object counts
	testCounts := []int{100, 500, 1000, 2000, 5000, 10000}
	reports := make([]report, len(testCounts))

	g, ctx := errgroup.WithContext(context.Background())
	for i, count := range testCounts {
		g.Go(func() error {
			r, err := runScenario(ctx, count, float32(*cellSize), *seed+int64(i))
			if err != nil {
				return fmt.Errorf("%d objects: %w", count, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("stress run failed", logging.Err(err))
		os.Exit(1)
	}

	for _, r := range reports {
		speedup := float64(r.bruteTime) / float64(r.hashTime)
		fmt.Printf("%5d objects: hash %8v | brute %10v | %5d pairs | %.1fx speedup | %4d mover hits in %v | %d cells %016x\n",
			r.count, r.hashTime.Round(time.Microsecond), r.bruteTime.Round(time.Microsecond), r.pairs, speedup,
			r.moverHits, r.moverTime.Round(time.Microsecond), r.cells, r.digest)
	}
}

func runScenario(ctx context.Context, count int, cellSize float32, seed int64) (report, error) {
	rng := rand.New(rand.NewSource(seed))

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0

	cache := collision.NewColliderCache()
	spheres := make([]physics.Sphere, count)
	for i := range spheres {
		spheres[i] = physics.Sphere{
			Center: rl.Vector3{
				X: rng.Float32()*spawnSize - spawnSize/2,
				Y: rng.Float32()*spawnSize - spawnSize/2,
				Z: rng.Float32()*spawnSize - spawnSize/2,
			},
			Radius: 0.5 + rng.Float32()*0.5, // 0.5 to 1.0 radius
		}
	}

	bp, err := broadphase.New(cellSize)
	if err != nil {
		return report{}, err
	}
	for i, s := range spheres {
		id := engine.EntityID(i + 1)
		box, err := physics.AABBFromSphere(s)
		if err != nil {
			return report{}, err
		}
		cache.Spheres[id] = collision.SphereColliderInfo{Sphere: s, IsStatic: true}
		bp.Insert(broadphase.NewProxy(id, box, true))
	}

	if err := ctx.Err(); err != nil {
		return report{}, err
	}

	hashStart := time.Now()
	hashPairs := hashPairCount(bp, spheres)
	hashTime := time.Since(hashStart)

	bruteStart := time.Now()
	brutePairs := brutePairCount(spheres)
	bruteTime := time.Since(bruteStart)

	if hashPairs != brutePairs {
		return report{}, fmt.Errorf("broadphase missed pairs: hash %d, brute force %d", hashPairs, brutePairs)
	}

	if err := ctx.Err(); err != nil {
		return report{}, err
	}

	// Sweep small movers through the field
	qs := collision.NewCacheQueryService(bp, cache)
	moverStart := time.Now()
	hits := 0
	for i := 0; i < 200; i++ {
		start := rl.Vector3{X: -spawnSize / 2, Y: rng.Float32()*spawnSize - spawnSize/2, Z: rng.Float32()*spawnSize - spawnSize/2}
		res, err := collision.Solve(collision.MoverInput{
			Position: start,
			Radius:   0.25,
			Delta:    rl.Vector3{X: spawnSize},
		}, qs)
		if err != nil {
			return report{}, err
		}
		if res.Collided {
			hits++
		}
	}

	return report{
		count:     count,
		hashTime:  hashTime,
		bruteTime: bruteTime,
		pairs:     hashPairs,
		moverTime: time.Since(moverStart),
		moverHits: hits,
		cells:     bp.CellCount(),
		digest:    bp.Digest(),
	}, nil
}

func hashPairCount(bp *broadphase.SpatialHash, spheres []physics.Sphere) int {
	var out []engine.EntityID
	pairs := 0
	for i, s := range spheres {
		self := engine.EntityID(i + 1)
		box, _ := physics.AABBFromSphere(s)
		out = bp.QueryAABB(box, nil, out)
		for _, other := range out {
			if other <= self {
				continue
			}
			if physics.OverlapSphereSphere(s, spheres[other-1]) {
				pairs++
			}
		}
	}
	return pairs
}

// brutePairCount is the naive O(n²) reference.
func brutePairCount(spheres []physics.Sphere) int {
	pairs := 0
	for i := 0; i < len(spheres); i++ {
		for j := i + 1; j < len(spheres); j++ {
			if physics.OverlapSphereSphere(spheres[i], spheres[j]) {
				pairs++
			}
		}
	}
	return pairs
}
