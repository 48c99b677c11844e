package schema

// Model variant names recognised by the dispatcher. Matching is exact.
const (
	ModelTSEBPT  = "TSEB_PT"
	ModelTSEB2T  = "TSEB_2T"
	ModelDTD     = "DTD"
	ModelDisTSEB = "disTSEB"
)

// KnownModels lists the four recognised model variants.
var KnownModels = []string{ModelTSEBPT, ModelTSEB2T, ModelDTD, ModelDisTSEB}

// SiteDescription holds the landcover, coordinate, altitude, reference
// height and soil roughness keys.
var SiteDescription = []string{
	"landcover",
	"lat",
	"lon",
	"alt",
	"stdlon",
	"z_T",
	"z_u",
	"z0_soil",
}

// VegetationProperties holds the canopy structural keys.
var VegetationProperties = []string{
	"leaf_width",
	"alpha_PT",
	"x_LAD",
}

// SpectralProperties holds the emissivity, reflectance and transmittance keys
// for canopy and soil.
var SpectralProperties = []string{
	"emis_C",
	"emis_S",
	"rho_vis_C",
	"tau_vis_C",
	"rho_nir_C",
	"tau_nir_C",
	"rho_vis_S",
	"rho_nir_S",
}

// ImageVars holds every per-pixel input key an image run can use. Which of
// them are active for a given run is decided by the rule table below.
var ImageVars = []string{
	"T_R1",
	"T_R0",
	"VZA",
	"LAI",
	"f_c",
	"f_g",
	"h_C",
	"w_C",
	"input_mask",
	"subset",
	"time",
	"DOY",
	"T_A1",
	"T_A0",
	"u",
	"ea",
	"S_dn",
	"L_dn",
	"p",
	"flux_LR",
	"flux_LR_ancillary",
}

// PointVars holds the per-observation keys a point time-series run reads on
// top of the scalar site, vegetation and spectral groups.
var PointVars = []string{
	"f_c",
	"f_g",
	"w_C",
}
