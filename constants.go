package xwalk

// Constants carried verbatim from Xwalk/src/xwalk/constants/Constants.java,
// the Java source this engine was distilled from (spec.md §6).
const (
	// MaxProteinDimension is the bounding-box edge length, in Ångström,
	// beyond which local-grid mode is recommended.
	MaxProteinDimension = 150.0
	// DefaultCrossLinkerLength is the default D_max, in Ångström.
	DefaultCrossLinkerLength = 34.0
	// MaxSASDDistance is a hard ceiling on SASD irrespective of the
	// caller's requested bound.
	MaxSASDDistance = 80.0
	// PathClearanceRadius is the minimum distance a path cell must
	// maintain from any occupied cell.
	PathClearanceRadius = 3.0
	// DefaultSolventRadius is the default solvent-accessibility radius.
	DefaultSolventRadius = 1.4
	// SolventRadiusBackbone is the solvent radius used when restricting
	// the engine to backbone atoms only.
	SolventRadiusBackbone = 2.0
	// DefaultCellSize is the default occupancy grid cell edge length.
	DefaultCellSize = 1.0

	// MinPeptideLength and MaxPeptideLength bound peptide eligibility
	// (supplemented from the Java source; peptide digestion itself
	// remains out of scope for this engine).
	MinPeptideLength = 5
	MaxPeptideLength = 40
	// MaxMiscleavages is the miscleavage ceiling for peptide eligibility.
	MaxMiscleavages = 1
)
