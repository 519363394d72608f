package param

// Enumeration name tables. The index of a name is the value stored in the
// record. These are never modified after program start.
var (
	MotionEstNames   = []string{"dia", "hex", "umh", "star", "sea", "full"}
	SourceCspNames   = []string{"i400", "i420", "i422", "i444", "nv12", "nv16"}
	VideoFormatNames = []string{"component", "pal", "ntsc", "secam", "mac", "undef"}
	FullRangeNames   = []string{"limited", "full"}
	ColorPrimNames   = []string{
		"reserved", "bt709", "undef", "reserved", "bt470m", "bt470bg",
		"smpte170m", "smpte240m", "film", "bt2020", "smpte428", "smpte431", "smpte432",
	}
	TransferNames = []string{
		"reserved", "bt709", "undef", "reserved", "bt470m", "bt470bg",
		"smpte170m", "smpte240m", "linear", "log100", "log316", "iec61966-2-4",
		"bt1361e", "iec61966-2-1", "bt2020-10", "bt2020-12", "smpte2084",
		"smpte428", "arib-std-b67",
	}
	ColorMatrixNames = []string{
		"gbr", "bt709", "undef", "reserved", "fcc", "bt470bg", "smpte170m",
		"smpte240m", "ycgco", "bt2020nc", "bt2020c", "smpte2085",
		"chroma-derived-nc", "chroma-derived-c", "ictcp",
	}
	SARNames = []string{
		"unknown", "1:1", "12:11", "10:11", "16:11", "40:33", "24:11", "20:11",
		"32:11", "80:33", "18:11", "15:11", "64:33", "160:99", "4:3", "3:2", "2:1",
	}
	InterlaceNames = []string{"prog", "tff", "bff"}
	AnalysisNames  = []string{"off", "save", "load"}

	// logLevelNames is offset by one: "none" is LogNone (-1).
	logLevelNames = []string{"none", "error", "warning", "info", "debug", "full"}
)

// PresetNames lists the presets from fastest to slowest. A preset may be
// named by its index in this table.
var PresetNames = []string{
	"ultrafast", "superfast", "veryfast", "faster", "fast",
	"medium", "slow", "slower", "veryslow", "placebo",
}

// TuneNames lists the exact tune names. The littlepox and vcb-s families
// additionally match by prefix, see ApplyTune.
var TuneNames = []string{
	"psnr", "ssim", "grain", "zerolatency", "fastdecode", "animation",
}
