package dictionary

// UIDDictionary maps well-known UIDs to their UIDEntry.
var UIDDictionary = map[string]*UIDEntry{
	"1.2.840.10008.1.2": {UID: "1.2.840.10008.1.2", NameHuman: "Implicit VR Little Endian", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.1": {UID: "1.2.840.10008.1.2.1", NameHuman: "Explicit VR Little Endian", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.1.99": {UID: "1.2.840.10008.1.2.1.99", NameHuman: "Deflated Explicit VR Little Endian", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.2": {UID: "1.2.840.10008.1.2.2", NameHuman: "Explicit VR Big Endian (Retired)", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.50": {UID: "1.2.840.10008.1.2.4.50", NameHuman: "JPEG Baseline (Process 1)", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.51": {UID: "1.2.840.10008.1.2.4.51", NameHuman: "JPEG Extended (Process 2 & 4)", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.57": {UID: "1.2.840.10008.1.2.4.57", NameHuman: "JPEG Lossless, Non-Hierarchical (Process 14)", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.70": {UID: "1.2.840.10008.1.2.4.70", NameHuman: "JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14 [Selection Value 1])", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.80": {UID: "1.2.840.10008.1.2.4.80", NameHuman: "JPEG-LS Lossless Image Compression", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.81": {UID: "1.2.840.10008.1.2.4.81", NameHuman: "JPEG-LS Lossy (Near-Lossless) Image Compression", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.90": {UID: "1.2.840.10008.1.2.4.90", NameHuman: "JPEG 2000 Image Compression (Lossless Only)", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.91": {UID: "1.2.840.10008.1.2.4.91", NameHuman: "JPEG 2000 Image Compression", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.92": {UID: "1.2.840.10008.1.2.4.92", NameHuman: "JPEG 2000 Part 2 Multi-component Image Compression (Lossless Only)", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.93": {UID: "1.2.840.10008.1.2.4.93", NameHuman: "JPEG 2000 Part 2 Multi-component Image Compression", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.94": {UID: "1.2.840.10008.1.2.4.94", NameHuman: "JPIP Referenced", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.95": {UID: "1.2.840.10008.1.2.4.95", NameHuman: "JPIP Referenced Deflate", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.100": {UID: "1.2.840.10008.1.2.4.100", NameHuman: "MPEG2 Main Profile / Main Level", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.101": {UID: "1.2.840.10008.1.2.4.101", NameHuman: "MPEG2 Main Profile / High Level", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.102": {UID: "1.2.840.10008.1.2.4.102", NameHuman: "MPEG-4 AVC/H.264 High Profile / Level 4.1", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.103": {UID: "1.2.840.10008.1.2.4.103", NameHuman: "MPEG-4 AVC/H.264 BD-compatible High Profile / Level 4.1", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.104": {UID: "1.2.840.10008.1.2.4.104", NameHuman: "MPEG-4 AVC/H.264 High Profile / Level 4.2 For 2D Video", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.105": {UID: "1.2.840.10008.1.2.4.105", NameHuman: "MPEG-4 AVC/H.264 High Profile / Level 4.2 For 3D Video", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.106": {UID: "1.2.840.10008.1.2.4.106", NameHuman: "MPEG-4 AVC/H.264 Stereo High Profile / Level 4.2", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.107": {UID: "1.2.840.10008.1.2.4.107", NameHuman: "HEVC/H.265 Main Profile / Level 5.1", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.4.108": {UID: "1.2.840.10008.1.2.4.108", NameHuman: "HEVC/H.265 Main 10 Profile / Level 5.1", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.2.5": {UID: "1.2.840.10008.1.2.5", NameHuman: "RLE Lossless", Type: UIDTypeTransferSyntax},
	"1.2.840.10008.1.1": {UID: "1.2.840.10008.1.1", NameHuman: "Verification SOP Class", Type: UIDTypeSOPClass},
	"1.2.840.10008.1.3.10": {UID: "1.2.840.10008.1.3.10", NameHuman: "Media Storage Directory Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.1": {UID: "1.2.840.10008.5.1.4.1.1.1", NameHuman: "Computed Radiography Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.1.1": {UID: "1.2.840.10008.5.1.4.1.1.1.1", NameHuman: "Digital X-Ray Image Storage - For Presentation", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.1.1.1": {UID: "1.2.840.10008.5.1.4.1.1.1.1.1", NameHuman: "Digital X-Ray Image Storage - For Processing", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.1.2": {UID: "1.2.840.10008.5.1.4.1.1.1.2", NameHuman: "Digital Mammography X-Ray Image Storage - For Presentation", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.1.2.1": {UID: "1.2.840.10008.5.1.4.1.1.1.2.1", NameHuman: "Digital Mammography X-Ray Image Storage - For Processing", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.1.3": {UID: "1.2.840.10008.5.1.4.1.1.1.3", NameHuman: "Digital Intra-Oral X-Ray Image Storage - For Presentation", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.1.3.1": {UID: "1.2.840.10008.5.1.4.1.1.1.3.1", NameHuman: "Digital Intra-Oral X-Ray Image Storage - For Processing", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.2": {UID: "1.2.840.10008.5.1.4.1.1.2", NameHuman: "CT Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.2.1": {UID: "1.2.840.10008.5.1.4.1.1.2.1", NameHuman: "Enhanced CT Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.2.2": {UID: "1.2.840.10008.5.1.4.1.1.2.2", NameHuman: "Legacy Converted Enhanced CT Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.3.1": {UID: "1.2.840.10008.5.1.4.1.1.3.1", NameHuman: "Ultrasound Multi-frame Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.4": {UID: "1.2.840.10008.5.1.4.1.1.4", NameHuman: "MR Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.4.1": {UID: "1.2.840.10008.5.1.4.1.1.4.1", NameHuman: "Enhanced MR Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.4.2": {UID: "1.2.840.10008.5.1.4.1.1.4.2", NameHuman: "MR Spectroscopy Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.4.3": {UID: "1.2.840.10008.5.1.4.1.1.4.3", NameHuman: "Enhanced MR Color Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.4.4": {UID: "1.2.840.10008.5.1.4.1.1.4.4", NameHuman: "Legacy Converted Enhanced MR Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.6.1": {UID: "1.2.840.10008.5.1.4.1.1.6.1", NameHuman: "Ultrasound Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.6.2": {UID: "1.2.840.10008.5.1.4.1.1.6.2", NameHuman: "Enhanced US Volume Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.7": {UID: "1.2.840.10008.5.1.4.1.1.7", NameHuman: "Secondary Capture Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.7.1": {UID: "1.2.840.10008.5.1.4.1.1.7.1", NameHuman: "Multi-frame Single Bit Secondary Capture Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.7.2": {UID: "1.2.840.10008.5.1.4.1.1.7.2", NameHuman: "Multi-frame Grayscale Byte Secondary Capture Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.7.3": {UID: "1.2.840.10008.5.1.4.1.1.7.3", NameHuman: "Multi-frame Grayscale Word Secondary Capture Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.7.4": {UID: "1.2.840.10008.5.1.4.1.1.7.4", NameHuman: "Multi-frame True Color Secondary Capture Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.9.1.1": {UID: "1.2.840.10008.5.1.4.1.1.9.1.1", NameHuman: "12-lead ECG Waveform Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.9.1.2": {UID: "1.2.840.10008.5.1.4.1.1.9.1.2", NameHuman: "General ECG Waveform Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.9.1.3": {UID: "1.2.840.10008.5.1.4.1.1.9.1.3", NameHuman: "Ambulatory ECG Waveform Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.9.2.1": {UID: "1.2.840.10008.5.1.4.1.1.9.2.1", NameHuman: "Hemodynamic Waveform Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.9.4.1": {UID: "1.2.840.10008.5.1.4.1.1.9.4.1", NameHuman: "Basic Voice Audio Waveform Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.11.1": {UID: "1.2.840.10008.5.1.4.1.1.11.1", NameHuman: "Grayscale Softcopy Presentation State Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.11.2": {UID: "1.2.840.10008.5.1.4.1.1.11.2", NameHuman: "Color Softcopy Presentation State Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.12.1": {UID: "1.2.840.10008.5.1.4.1.1.12.1", NameHuman: "X-Ray Angiographic Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.12.1.1": {UID: "1.2.840.10008.5.1.4.1.1.12.1.1", NameHuman: "Enhanced XA Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.12.2": {UID: "1.2.840.10008.5.1.4.1.1.12.2", NameHuman: "X-Ray Radiofluoroscopic Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.12.2.1": {UID: "1.2.840.10008.5.1.4.1.1.12.2.1", NameHuman: "Enhanced XRF Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.13.1.1": {UID: "1.2.840.10008.5.1.4.1.1.13.1.1", NameHuman: "X-Ray 3D Angiographic Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.13.1.3": {UID: "1.2.840.10008.5.1.4.1.1.13.1.3", NameHuman: "Breast Tomosynthesis Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.20": {UID: "1.2.840.10008.5.1.4.1.1.20", NameHuman: "Nuclear Medicine Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.66": {UID: "1.2.840.10008.5.1.4.1.1.66", NameHuman: "Raw Data Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.66.1": {UID: "1.2.840.10008.5.1.4.1.1.66.1", NameHuman: "Spatial Registration Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.66.2": {UID: "1.2.840.10008.5.1.4.1.1.66.2", NameHuman: "Spatial Fiducials Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.66.4": {UID: "1.2.840.10008.5.1.4.1.1.66.4", NameHuman: "Segmentation Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.67": {UID: "1.2.840.10008.5.1.4.1.1.67", NameHuman: "Real World Value Mapping Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.77.1.1": {UID: "1.2.840.10008.5.1.4.1.1.77.1.1", NameHuman: "VL Endoscopic Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.77.1.2": {UID: "1.2.840.10008.5.1.4.1.1.77.1.2", NameHuman: "VL Microscopic Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.77.1.4": {UID: "1.2.840.10008.5.1.4.1.1.77.1.4", NameHuman: "VL Photographic Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.77.1.5.1": {UID: "1.2.840.10008.5.1.4.1.1.77.1.5.1", NameHuman: "Ophthalmic Photography 8 Bit Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.77.1.5.4": {UID: "1.2.840.10008.5.1.4.1.1.77.1.5.4", NameHuman: "Ophthalmic Tomography Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.77.1.6": {UID: "1.2.840.10008.5.1.4.1.1.77.1.6", NameHuman: "VL Whole Slide Microscopy Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.88.11": {UID: "1.2.840.10008.5.1.4.1.1.88.11", NameHuman: "Basic Text SR Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.88.22": {UID: "1.2.840.10008.5.1.4.1.1.88.22", NameHuman: "Enhanced SR Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.88.33": {UID: "1.2.840.10008.5.1.4.1.1.88.33", NameHuman: "Comprehensive SR Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.88.50": {UID: "1.2.840.10008.5.1.4.1.1.88.50", NameHuman: "Mammography CAD SR Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.88.59": {UID: "1.2.840.10008.5.1.4.1.1.88.59", NameHuman: "Key Object Selection Document Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.88.67": {UID: "1.2.840.10008.5.1.4.1.1.88.67", NameHuman: "X-Ray Radiation Dose SR Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.104.1": {UID: "1.2.840.10008.5.1.4.1.1.104.1", NameHuman: "Encapsulated PDF Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.104.2": {UID: "1.2.840.10008.5.1.4.1.1.104.2", NameHuman: "Encapsulated CDA Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.128": {UID: "1.2.840.10008.5.1.4.1.1.128", NameHuman: "Positron Emission Tomography Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.130": {UID: "1.2.840.10008.5.1.4.1.1.130", NameHuman: "Enhanced PET Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.1": {UID: "1.2.840.10008.5.1.4.1.1.481.1", NameHuman: "RT Image Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.2": {UID: "1.2.840.10008.5.1.4.1.1.481.2", NameHuman: "RT Dose Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.3": {UID: "1.2.840.10008.5.1.4.1.1.481.3", NameHuman: "RT Structure Set Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.4": {UID: "1.2.840.10008.5.1.4.1.1.481.4", NameHuman: "RT Beams Treatment Record Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.5": {UID: "1.2.840.10008.5.1.4.1.1.481.5", NameHuman: "RT Plan Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.6": {UID: "1.2.840.10008.5.1.4.1.1.481.6", NameHuman: "RT Brachy Treatment Record Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.7": {UID: "1.2.840.10008.5.1.4.1.1.481.7", NameHuman: "RT Treatment Summary Record Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.8": {UID: "1.2.840.10008.5.1.4.1.1.481.8", NameHuman: "RT Ion Plan Storage", Type: UIDTypeSOPClass},
	"1.2.840.10008.5.1.4.1.1.481.9": {UID: "1.2.840.10008.5.1.4.1.1.481.9", NameHuman: "RT Ion Beams Treatment Record Storage", Type: UIDTypeSOPClass},
}
