package perf

var ParseVMPeak = parseVMPeak
